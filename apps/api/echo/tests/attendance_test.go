package tests

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edutrack/edutrack/core/attendance"
)

func Test_attendanceApi_mark(t *testing.T) {
	app := setup(t)
	facultyToken := getToken(t, facultyIdentity)

	mark := func(m attendance.Mark) (*attendance.Record, int) {
		t.Helper()
		req, rec := newAuthRequest(http.MethodPost, "/v1/attendance", facultyToken, marchallObj(t, m))
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			return nil, rec.Code
		}
		var r attendance.Record
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
		return &r, rec.Code
	}

	// marking the seeded (S001, 2024-01-15, Mathematics) triple again
	// replaces it, keeping the id
	r, code := mark(attendance.Mark{StudentID: "S001", Date: "2024-01-15", Status: attendance.StatusAbsent, Course: "Mathematics"})
	assert.Equal(t, http.StatusCreated, code)
	if assert.NotNil(t, r) {
		assert.Equal(t, "ATT001", r.ID)
		assert.Equal(t, attendance.StatusAbsent, r.Status)
	}

	// a different date is a fresh record
	r, _ = mark(attendance.Mark{StudentID: "S001", Date: "2024-01-16", Status: attendance.StatusPresent, Course: "Mathematics"})
	if assert.NotNil(t, r) {
		assert.Equal(t, "ATT004", r.ID)
		assert.Equal(t, "Class 1", r.Class, "class must come from the student record")
	}

	// course defaults when omitted
	r, _ = mark(attendance.Mark{StudentID: "S002", Date: "2024-01-16", Status: attendance.StatusPresent})
	if assert.NotNil(t, r) {
		assert.Equal(t, attendance.DefaultCourse, r.Course)
	}

	// unknown student
	_, code = mark(attendance.Mark{StudentID: "S999", Date: "2024-01-16", Status: attendance.StatusPresent})
	assert.Equal(t, http.StatusBadRequest, code)

	// bad status
	_, code = mark(attendance.Mark{StudentID: "S001", Date: "2024-01-16", Status: "Late"})
	assert.Equal(t, http.StatusBadRequest, code)

	// students cannot mark
	req, rec := newAuthRequest(http.MethodPost, "/v1/attendance", getToken(t, studentIdentity),
		marchallObj(t, attendance.Mark{StudentID: "S001", Status: attendance.StatusPresent}))
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func Test_attendanceApi_query(t *testing.T) {
	app := setup(t)
	adminToken := getToken(t, adminIdentity)

	req, rec := newAuthRequest(http.MethodGet, "/v1/attendance?student_id=S001", adminToken)
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var records []attendance.Record
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	if assert.Len(t, records, 1) {
		assert.Equal(t, "ATT001", records[0].ID)
	}

	req, rec = newAuthRequest(http.MethodGet, "/v1/attendance?status=Absent", adminToken)
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	records = nil
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	if assert.Len(t, records, 1) {
		assert.Equal(t, "S003", records[0].StudentID)
	}
}

func Test_attendanceApi_export(t *testing.T) {
	app := setup(t)

	req, rec := newAuthRequest(http.MethodGet, "/v1/attendance/export", getToken(t, facultyIdentity))
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Header().Get("Content-Type"), "spreadsheetml"))
	assert.True(t, strings.Contains(rec.Header().Get("Content-Disposition"), "attachment"))
	assert.NotZero(t, rec.Body.Len())

	// students cannot export
	req, rec = newAuthRequest(http.MethodGet, "/v1/attendance/export", getToken(t, studentIdentity))
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
