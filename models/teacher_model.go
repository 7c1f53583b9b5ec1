package models

// Teacher is one credential entry from teachers.json. Passwords are stored
// in plain text and compared by exact string equality.
type Teacher struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TeacherFile is the envelope of teachers.json.
type TeacherFile struct {
	Teachers []Teacher `json:"teachers"`
}
