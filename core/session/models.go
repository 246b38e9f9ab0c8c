package session

// Roles
const (
	RoleAdmin   = "admin"
	RoleFaculty = "faculty"
	RoleStudent = "student"
)

// Identity is the persisted logged-in user, password stripped.
type Identity struct {
	Username  string `json:"username"`
	Role      string `json:"role"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	StudentID string `json:"studentId,omitempty"`
}

func (i Identity) IsZero() bool { return i.Username == "" }

func (i Identity) IsAdmin() bool   { return i.Role == RoleAdmin }
func (i Identity) IsFaculty() bool { return i.Role == RoleFaculty }
func (i Identity) IsStudent() bool { return i.Role == RoleStudent }

// Credentials is the login payload.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// account is one row of the fixed demo credential table. Passwords are
// plaintext; the table ships with the demo and is shown on the login page.
type account struct {
	password  string
	role      string
	name      string
	email     string
	studentID string
}
