package models

// Activity is one catalog entry. The catalog file is free-form: only the
// "participants" key is interpreted by the server, everything else is
// passed through load/save untouched.
type Activity map[string]any

// Catalog maps activity name to its record.
type Catalog map[string]Activity

// Participants returns the activity's participant emails. A missing or
// malformed "participants" key reads as an empty list.
func (a Activity) Participants() []string {
	switch list := a["participants"].(type) {
	case []string:
		return list
	case []any:
		emails := make([]string, 0, len(list))
		for _, v := range list {
			if email, ok := v.(string); ok {
				emails = append(emails, email)
			}
		}
		return emails
	}
	return nil
}

func (a Activity) HasParticipant(email string) bool {
	for _, e := range a.Participants() {
		if e == email {
			return true
		}
	}
	return false
}

func (a Activity) AddParticipant(email string) {
	a["participants"] = append(a.Participants(), email)
}

func (a Activity) RemoveParticipant(email string) {
	current := a.Participants()
	next := make([]string, 0, len(current))
	for _, e := range current {
		if e != email {
			next = append(next, e)
		}
	}
	a["participants"] = next
}
