package grade

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLetterFor(t *testing.T) {
	tests := []struct {
		name       string
		marks      float64
		totalMarks float64
		want       string
	}{
		{"exactly 90% is A+", 90, 100, "A+"},
		{"just under 90% is A", 89.9, 100, "A"},
		{"exactly 80% is A", 80, 100, "A"},
		{"exactly 70% is B+", 70, 100, "B+"},
		{"exactly 60% is B", 60, 100, "B"},
		{"exactly 50% is C", 50, 100, "C"},
		{"exactly 40% is D", 40, 100, "D"},
		{"just under 40% is F", 39.9, 100, "F"},
		{"zero marks is F", 0, 100, "F"},
		{"scaled total, 45/50 is A+", 45, 50, "A+"},
		{"scaled total, 27/50 is C", 27, 50, "C"},
		{"zero total is F", 10, 0, "F"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LetterFor(tt.marks, tt.totalMarks))
		})
	}
}

func TestRecord_Percentage(t *testing.T) {
	assert.Equal(t, 90.0, Record{Marks: 45, TotalMarks: 50}.Percentage())
	assert.Equal(t, 0.0, Record{Marks: 45, TotalMarks: 0}.Percentage())
}

func TestNewRecord_Validate(t *testing.T) {
	nr := NewRecord{StudentID: " S001 ", Course: "Math", Marks: 50, TotalMarks: 100}
	assert.NoError(t, nr.Validate())
	assert.Equal(t, "S001", nr.StudentID)

	nr = NewRecord{StudentID: "S001", Course: "Math", Marks: 101, TotalMarks: 100}
	assert.Error(t, nr.Validate(), "marks above totalMarks must be rejected")

	nr = NewRecord{Course: "Math", Marks: 10, TotalMarks: 100}
	assert.Error(t, nr.Validate(), "studentId is required")
}
