package session

import (
	"errors"

	"github.com/edutrack/edutrack/core"
)

// ErrInvalidCredentials deliberately does not distinguish an unknown
// username from a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// accounts is the fixed demo credential table.
var accounts = map[string]account{
	"admin":   {password: "admin123", role: RoleAdmin, name: "Admin User", email: "admin@edutrack.com"},
	"faculty": {password: "faculty123", role: RoleFaculty, name: "Faculty User", email: "sarah.w@edutrack.com"},
	"student": {password: "student123", role: RoleStudent, name: "Student User", email: "john@example.com", studentID: "S001"},
}

type (
	Repository interface {
		SaveIdentity(i Identity) error
		// LoadIdentity returns a zero Identity when none is persisted.
		LoadIdentity() (Identity, error)
		ClearIdentity() error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Login validates against the credential table, persists the resulting
// identity and returns it. No lockout, no rate limiting.
func (svc *Service) Login(creds Credentials) (Identity, error) {
	creds.Username = core.CleanString(creds.Username, true /* lower */)
	if err := core.Validate.Struct(&creds); err != nil {
		return Identity{}, err
	}

	acct, ok := accounts[creds.Username]
	if !ok || acct.password != creds.Password {
		return Identity{}, ErrInvalidCredentials
	}

	ident := Identity{
		Username:  creds.Username,
		Role:      acct.role,
		Name:      acct.name,
		Email:     acct.email,
		StudentID: acct.studentID,
	}
	if err := svc.repo.SaveIdentity(ident); err != nil {
		return Identity{}, err
	}
	return ident, nil
}

// Logout clears the persisted identity. Not an error if none was persisted.
func (svc *Service) Logout() error {
	return svc.repo.ClearIdentity()
}

// Restore returns the persisted identity without revalidating credentials.
// A zero Identity means no session.
func (svc *Service) Restore() (Identity, error) {
	return svc.repo.LoadIdentity()
}
