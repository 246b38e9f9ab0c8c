package entitydb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/edutrack/edutrack/core/activity"
	"github.com/edutrack/edutrack/core/attendance"
	"github.com/edutrack/edutrack/core/course"
	"github.com/edutrack/edutrack/core/faculty"
	"github.com/edutrack/edutrack/core/fee"
	"github.com/edutrack/edutrack/core/grade"
	"github.com/edutrack/edutrack/core/student"
)

// Seed replaces every collection with the demo fixture set and persists
// each slot.
func (db *DB) Seed(ctx context.Context) error {
	if err := db.students.reset(ctx, seedStudents()); err != nil {
		return errors.Wrap(err, "seeding students")
	}
	if err := db.faculty.reset(ctx, seedFaculty()); err != nil {
		return errors.Wrap(err, "seeding faculty")
	}
	if err := db.courses.reset(ctx, seedCourses()); err != nil {
		return errors.Wrap(err, "seeding courses")
	}
	if err := db.attendance.reset(ctx, seedAttendance()); err != nil {
		return errors.Wrap(err, "seeding attendance")
	}
	if err := db.grades.reset(ctx, seedGrades()); err != nil {
		return errors.Wrap(err, "seeding grades")
	}
	if err := db.fees.reset(ctx, seedFees()); err != nil {
		return errors.Wrap(err, "seeding fees")
	}
	if err := db.activity.reset(ctx, seedActivity()); err != nil {
		return errors.Wrap(err, "seeding activity log")
	}
	return nil
}

func seedStudents() []student.Student {
	return []student.Student{
		{ID: "S001", Name: "John Doe", Email: "john@example.com", Phone: "1234567890", Class: "Class 1", Section: "A", RollNumber: "101", Status: student.StatusActive, Gender: "Male", BloodGroup: "O+", Address: "123 Main St", DateOfBirth: "2010-05-15", ParentName: "Robert Doe", ParentPhone: "9876543210", AdmissionDate: "2020-04-01"},
		{ID: "S002", Name: "Jane Smith", Email: "jane@example.com", Phone: "1234567891", Class: "Class 2", Section: "B", RollNumber: "201", Status: student.StatusActive, Gender: "Female", BloodGroup: "A+", Address: "456 Oak Ave", DateOfBirth: "2009-08-20", ParentName: "Mary Smith", ParentPhone: "9876543211", AdmissionDate: "2019-04-01"},
		{ID: "S003", Name: "Mike Johnson", Email: "mike@example.com", Phone: "1234567892", Class: "Class 3", Section: "A", RollNumber: "301", Status: student.StatusActive, Gender: "Male", BloodGroup: "B+", Address: "789 Pine Rd", DateOfBirth: "2008-12-10", ParentName: "David Johnson", ParentPhone: "9876543212", AdmissionDate: "2018-04-01"},
		{ID: "S004", Name: "Emily Davis", Email: "emily@example.com", Phone: "1234567893", Class: "Class 1", Section: "B", RollNumber: "102", Status: student.StatusActive, Gender: "Female", BloodGroup: "AB+", Address: "321 Elm St", DateOfBirth: "2010-03-25", ParentName: "Sarah Davis", ParentPhone: "9876543213", AdmissionDate: "2020-04-01"},
		{ID: "S005", Name: "Chris Wilson", Email: "chris@example.com", Phone: "1234567894", Class: "Class 2", Section: "A", RollNumber: "202", Status: student.StatusInactive, Gender: "Male", BloodGroup: "O-", Address: "654 Maple Dr", DateOfBirth: "2009-11-05", ParentName: "Tom Wilson", ParentPhone: "9876543214", AdmissionDate: "2019-04-01"},
	}
}

func seedFaculty() []faculty.Faculty {
	return []faculty.Faculty{
		{ID: "F001", Name: "Dr. Sarah Williams", Email: "sarah.w@edutrack.com", Phone: "5551234567", Department: "Science", Subject: "Physics", Qualification: "PhD", Experience: "10 years", Status: faculty.StatusActive, JoiningDate: "2015-06-01"},
		{ID: "F002", Name: "Prof. Michael Brown", Email: "michael.b@edutrack.com", Phone: "5551234568", Department: "Mathematics", Subject: "Mathematics", Qualification: "M.Sc", Experience: "8 years", Status: faculty.StatusActive, JoiningDate: "2017-08-15"},
		{ID: "F003", Name: "Dr. Jennifer Taylor", Email: "jennifer.t@edutrack.com", Phone: "5551234569", Department: "English", Subject: "English Literature", Qualification: "PhD", Experience: "12 years", Status: faculty.StatusActive, JoiningDate: "2013-04-10"},
		{ID: "F004", Name: "Mr. Robert Anderson", Email: "robert.a@edutrack.com", Phone: "5551234570", Department: "Computer Science", Subject: "Programming", Qualification: "M.Tech", Experience: "6 years", Status: faculty.StatusActive, JoiningDate: "2019-01-20"},
	}
}

func seedCourses() []course.Course {
	return []course.Course{
		{ID: "C001", Name: "Mathematics", Code: "MATH101", Credits: 4, Faculty: "Prof. Michael Brown", Class: "Class 1", Description: "Basic Mathematics", Duration: "6 months"},
		{ID: "C002", Name: "Physics", Code: "PHY101", Credits: 4, Faculty: "Dr. Sarah Williams", Class: "Class 2", Description: "Introduction to Physics", Duration: "6 months"},
		{ID: "C003", Name: "English", Code: "ENG101", Credits: 3, Faculty: "Dr. Jennifer Taylor", Class: "Class 1", Description: "English Literature", Duration: "6 months"},
		{ID: "C004", Name: "Computer Science", Code: "CS101", Credits: 4, Faculty: "Mr. Robert Anderson", Class: "Class 3", Description: "Programming Basics", Duration: "6 months"},
	}
}

func seedAttendance() []attendance.Record {
	return []attendance.Record{
		{ID: "ATT001", StudentID: "S001", StudentName: "John Doe", Class: "Class 1", Date: "2024-01-15", Status: attendance.StatusPresent, Course: "Mathematics"},
		{ID: "ATT002", StudentID: "S002", StudentName: "Jane Smith", Class: "Class 2", Date: "2024-01-15", Status: attendance.StatusPresent, Course: "Physics"},
		{ID: "ATT003", StudentID: "S003", StudentName: "Mike Johnson", Class: "Class 3", Date: "2024-01-15", Status: attendance.StatusAbsent, Course: "Computer Science"},
	}
}

func seedGrades() []grade.Record {
	return []grade.Record{
		{ID: "GRD001", StudentID: "S001", StudentName: "John Doe", Course: "Mathematics", Marks: 92, TotalMarks: 100, Grade: "A+", Date: "2024-01-20"},
		{ID: "GRD002", StudentID: "S002", StudentName: "Jane Smith", Course: "Physics", Marks: 95, TotalMarks: 100, Grade: "A+", Date: "2024-01-20"},
		{ID: "GRD003", StudentID: "S003", StudentName: "Mike Johnson", Course: "Computer Science", Marks: 87, TotalMarks: 100, Grade: "A", Date: "2024-01-20"},
		{ID: "GRD004", StudentID: "S004", StudentName: "Emily Davis", Course: "English", Marks: 90, TotalMarks: 100, Grade: "A+", Date: "2024-01-20"},
	}
}

func seedFees() []fee.Record {
	records := []fee.Record{
		{ID: "FEE001", StudentID: "S001", StudentName: "John Doe", Semester: "1st Semester 2024", TotalAmount: 5000, PaidAmount: 5000, DueDate: "2024-02-01", PaidDate: "2024-01-15"},
		{ID: "FEE002", StudentID: "S002", StudentName: "Jane Smith", Semester: "1st Semester 2024", TotalAmount: 5000, PaidAmount: 2500, DueDate: "2024-02-01", PaidDate: "2024-01-10"},
		{ID: "FEE003", StudentID: "S003", StudentName: "Mike Johnson", Semester: "1st Semester 2024", TotalAmount: 5000, PaidAmount: 5000, DueDate: "2024-02-01", PaidDate: "2024-01-12"},
		{ID: "FEE004", StudentID: "S004", StudentName: "Emily Davis", Semester: "1st Semester 2024", TotalAmount: 5000, PaidAmount: 0, DueDate: "2024-02-01"},
	}
	for i := range records {
		records[i].Derive()
	}
	return records
}

func seedActivity() []activity.Entry {
	now := time.Now().UTC()
	stamp := func(ago time.Duration) string { return now.Add(-ago).Format(time.RFC3339) }
	return []activity.Entry{
		{ID: uuid.NewString(), Action: "New student John Doe registered", Time: stamp(2 * time.Hour), Type: activity.TypeStudent},
		{ID: uuid.NewString(), Action: "Grade updated for Jane Smith in Physics", Time: stamp(3 * time.Hour), Type: activity.TypeGrade},
		{ID: uuid.NewString(), Action: "Attendance marked for Class 3", Time: stamp(5 * time.Hour), Type: activity.TypeAttendance},
		{ID: uuid.NewString(), Action: "Fee payment received from Mike Johnson", Time: stamp(24 * time.Hour), Type: activity.TypeFee},
	}
}
