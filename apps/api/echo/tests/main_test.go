package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	. "github.com/edutrack/edutrack/apps/api/echo"
	"github.com/edutrack/edutrack/core/activity"
	"github.com/edutrack/edutrack/core/attendance"
	"github.com/edutrack/edutrack/core/course"
	"github.com/edutrack/edutrack/core/faculty"
	"github.com/edutrack/edutrack/core/fee"
	"github.com/edutrack/edutrack/core/grade"
	"github.com/edutrack/edutrack/core/report"
	"github.com/edutrack/edutrack/core/session"
	"github.com/edutrack/edutrack/core/student"
	"github.com/edutrack/edutrack/storage/entitydb"
	memorykv "github.com/edutrack/edutrack/storage/kv/memory"
	"github.com/edutrack/edutrack/tests"
)

var (
	errMissingToken     = httpErr{Error: "missing or malformed token"}
	errPermissionDenied = httpErr{Error: "permission denied"}

	adminIdentity   = session.Identity{Username: "admin", Role: session.RoleAdmin, Name: "Admin User"}
	facultyIdentity = session.Identity{Username: "faculty", Role: session.RoleFaculty, Name: "Faculty User"}
	studentIdentity = session.Identity{Username: "student", Role: session.RoleStudent, Name: "Student User", StudentID: "S001"}
)

// setup builds a server over a fresh in-memory store; every call starts
// from the seeded fixture set.
func setup(t *testing.T) Server {
	t.Helper()

	store := memorykv.Open()
	db, err := entitydb.Open(context.Background(), store, testutil.NewLogger())
	if err != nil {
		t.Fatalf("entitydb.Open(): %v", err)
	}

	activitySvc := activity.NewService(entitydb.NewActivityRepository(db))
	studentRepo := entitydb.NewStudentRepository(db)
	facultyRepo := entitydb.NewFacultyRepository(db)
	courseRepo := entitydb.NewCourseRepository(db)
	attendanceRepo := entitydb.NewAttendanceRepository(db)
	gradeRepo := entitydb.NewGradeRepository(db)
	feeRepo := entitydb.NewFeeRepository(db)

	return NewServer(&Options{
		DisableReqLogs: true,
		Logger:         testutil.NewLogger(),

		SessionSvc:    session.NewService(entitydb.NewSessionRepository(db)),
		StudentSvc:    student.NewService(studentRepo, activitySvc),
		FacultySvc:    faculty.NewService(facultyRepo, activitySvc),
		CourseSvc:     course.NewService(courseRepo, activitySvc),
		AttendanceSvc: attendance.NewService(attendanceRepo, studentRepo, activitySvc),
		GradeSvc:      grade.NewService(gradeRepo, studentRepo, activitySvc),
		FeeSvc:        fee.NewService(feeRepo, studentRepo, activitySvc),
		ActivitySvc:   activitySvc,
		ReportSvc: report.NewService(
			studentRepo, facultyRepo, courseRepo, attendanceRepo, gradeRepo, feeRepo,
		),
	})
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func getToken(t *testing.T, ident session.Identity) string {
	t.Helper()
	token, err := GenerateToken(GetIdentityClaims(ident))
	if err != nil {
		t.Fatalf("getToken(): %v", err)
	}
	return token
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj(): %v", err)
	}
	return data
}

func marchallList(t *testing.T, objs ...interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marchallList(): %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v; body %s", rec.Code, tt.wantCode, rec.Body.String())
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
