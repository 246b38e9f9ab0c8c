// Package report aggregates the entity collections into the read-only
// numbers behind the dashboards. Everything here is a pure projection; no
// report call ever writes.
package report

import (
	"math"

	"github.com/edutrack/edutrack/core/attendance"
	"github.com/edutrack/edutrack/core/course"
	"github.com/edutrack/edutrack/core/faculty"
	"github.com/edutrack/edutrack/core/fee"
	"github.com/edutrack/edutrack/core/grade"
	"github.com/edutrack/edutrack/core/student"
)

type (
	// DashboardStats backs the admin overview cards.
	DashboardStats struct {
		TotalStudents     int `json:"totalStudents"`
		ActiveStudents    int `json:"activeStudents"`
		TotalFaculty      int `json:"totalFaculty"`
		TotalCourses      int `json:"totalCourses"`
		AverageAttendance int `json:"averageAttendance"` // percent, rounded
	}

	// FeeSummary backs the fee analytics doughnut.
	FeeSummary struct {
		TotalAmount   float64 `json:"totalAmount"`
		PaidAmount    float64 `json:"paidAmount"`
		PendingAmount float64 `json:"pendingAmount"`
	}

	// StudentSummary backs the student self-service dashboard.
	StudentSummary struct {
		Student           student.Student `json:"student"`
		AttendancePercent int             `json:"attendancePercent"`
		AverageGrade      int             `json:"averageGrade"` // percent, rounded
		FeeBalance        float64         `json:"feeBalance"`
	}

	Service struct {
		students   student.Repository
		faculty    faculty.Repository
		courses    course.Repository
		attendance attendance.Repository
		grades     grade.Repository
		fees       fee.Repository
	}
)

func NewService(
	students student.Repository,
	fac faculty.Repository,
	courses course.Repository,
	att attendance.Repository,
	grades grade.Repository,
	fees fee.Repository,
) *Service {
	return &Service{
		students:   students,
		faculty:    fac,
		courses:    courses,
		attendance: att,
		grades:     grades,
		fees:       fees,
	}
}

func (svc *Service) Dashboard() (DashboardStats, error) {
	var stats DashboardStats

	students, err := svc.students.QueryAllStudents()
	if err != nil {
		return stats, err
	}
	stats.TotalStudents = len(students)
	for _, s := range students {
		if s.IsActive() {
			stats.ActiveStudents++
		}
	}

	fac, err := svc.faculty.QueryAllFaculty()
	if err != nil {
		return stats, err
	}
	stats.TotalFaculty = len(fac)

	courses, err := svc.courses.QueryAllCourses()
	if err != nil {
		return stats, err
	}
	stats.TotalCourses = len(courses)

	records, err := svc.attendance.QueryAllRecords()
	if err != nil {
		return stats, err
	}
	stats.AverageAttendance = presentPercent(records)
	return stats, nil
}

func (svc *Service) Fees() (FeeSummary, error) {
	var sum FeeSummary
	records, err := svc.fees.QueryAllRecords()
	if err != nil {
		return sum, err
	}
	for _, r := range records {
		sum.TotalAmount += r.TotalAmount
		sum.PaidAmount += r.PaidAmount
	}
	sum.PendingAmount = sum.TotalAmount - sum.PaidAmount
	return sum, nil
}

// ClassDistribution counts students per class label.
func (svc *Service) ClassDistribution() (map[string]int, error) {
	students, err := svc.students.QueryAllStudents()
	if err != nil {
		return nil, err
	}
	dist := make(map[string]int)
	for _, s := range students {
		dist[s.Class]++
	}
	return dist, nil
}

// GradeDistribution counts letter grades, optionally restricted to one course.
func (svc *Service) GradeDistribution(courseName string) (map[string]int, error) {
	records, err := svc.grades.QueryAllRecords()
	if err != nil {
		return nil, err
	}
	dist := make(map[string]int)
	for _, r := range records {
		if courseName != "" && r.Course != courseName {
			continue
		}
		dist[r.Grade]++
	}
	return dist, nil
}

// Student computes the self-service summary for one student.
func (svc *Service) Student(id string) (StudentSummary, error) {
	st, err := svc.students.GetStudentByID(id)
	if err != nil {
		return StudentSummary{}, err
	}
	sum := StudentSummary{Student: st}

	records, err := svc.attendance.FilterRecords(attendance.QueryFilter{StudentID: id})
	if err != nil {
		return StudentSummary{}, err
	}
	sum.AttendancePercent = presentPercent(records)

	grades, err := svc.grades.FilterRecords(grade.QueryFilter{StudentID: id})
	if err != nil {
		return StudentSummary{}, err
	}
	if len(grades) > 0 {
		var total float64
		for _, g := range grades {
			total += g.Percentage()
		}
		sum.AverageGrade = int(math.Round(total / float64(len(grades))))
	}

	fees, err := svc.fees.FilterRecords(fee.QueryFilter{StudentID: id})
	if err != nil {
		return StudentSummary{}, err
	}
	for _, f := range fees {
		sum.FeeBalance += f.PendingAmount
	}
	return sum, nil
}

func presentPercent(records []attendance.Record) int {
	if len(records) == 0 {
		return 0
	}
	var present int
	for _, r := range records {
		if r.Status == attendance.StatusPresent {
			present++
		}
	}
	return int(math.Round(float64(present) / float64(len(records)) * 100))
}
