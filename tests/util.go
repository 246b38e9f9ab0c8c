package testutil

import (
	"io"
	"log"
	"testing"

	"github.com/edutrack/edutrack/core"
	"github.com/edutrack/edutrack/core/student"
)

// NewLogger returns a quiet logger for tests.
func NewLogger() core.Logger {
	return core.NewConsoleLogger(log.New(io.Discard, "", 0))
}

// CreateStudent registers a student through the repository, failing the test on error.
func CreateStudent(t *testing.T, repo student.Repository, name, email, class, section, roll string) student.Student {
	t.Helper()
	st, err := repo.CreateStudent(student.Student{
		Name:       name,
		Email:      email,
		Class:      class,
		Section:    section,
		RollNumber: roll,
		Status:     student.StatusActive,
	})
	if err != nil {
		t.Fatalf("CreateStudent() failed: %v", err)
	}
	return st
}
