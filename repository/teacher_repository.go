package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"mergington-server/models"
)

type TeacherRepositoryInterface interface {
	Authenticate(username, password string) (bool, error)
}

// TeacherRepository reads teacher credentials from teachers.json. The file
// is re-read on every call, so credential edits take effect without a
// restart.
type TeacherRepository struct {
	path string
}

func NewTeacherRepository(path string) *TeacherRepository {
	return &TeacherRepository{path: path}
}

// Authenticate matches username and password by exact string equality
// against the credential file. A missing file means no teachers.
func (r *TeacherRepository) Authenticate(username, password string) (bool, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read teachers file %s: %w", r.path, err)
	}

	var file models.TeacherFile
	if err := json.Unmarshal(data, &file); err != nil {
		return false, fmt.Errorf("failed to parse teachers file %s: %w", r.path, err)
	}

	for _, t := range file.Teachers {
		if t.Username == username && t.Password == password {
			return true, nil
		}
	}
	return false, nil
}
