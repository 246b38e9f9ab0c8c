package activity

// Entry types
const (
	TypeStudent    = "student"
	TypeFaculty    = "faculty"
	TypeCourse     = "course"
	TypeAttendance = "attendance"
	TypeGrade      = "grade"
	TypeFee        = "fee"
)

// MaxEntries caps the log; older entries fall off the end.
const MaxEntries = 10

// Entry is one human-readable line of the recent-activity feed, newest first.
type Entry struct {
	ID     string `json:"id"`
	Action string `json:"action"`
	Time   string `json:"time"` // RFC3339, UTC
	Type   string `json:"type"`
}

func (e Entry) Key() string { return e.ID }
