package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edutrack/edutrack/core"
	"github.com/edutrack/edutrack/core/student"
)

// seededStudents mirrors the fixture set loaded on first open.
func seededStudents() []student.Student {
	return []student.Student{
		{ID: "S001", Name: "John Doe", Email: "john@example.com", Phone: "1234567890", Class: "Class 1", Section: "A", RollNumber: "101", Status: student.StatusActive, Gender: "Male", BloodGroup: "O+", Address: "123 Main St", DateOfBirth: "2010-05-15", ParentName: "Robert Doe", ParentPhone: "9876543210", AdmissionDate: "2020-04-01"},
		{ID: "S002", Name: "Jane Smith", Email: "jane@example.com", Phone: "1234567891", Class: "Class 2", Section: "B", RollNumber: "201", Status: student.StatusActive, Gender: "Female", BloodGroup: "A+", Address: "456 Oak Ave", DateOfBirth: "2009-08-20", ParentName: "Mary Smith", ParentPhone: "9876543211", AdmissionDate: "2019-04-01"},
		{ID: "S003", Name: "Mike Johnson", Email: "mike@example.com", Phone: "1234567892", Class: "Class 3", Section: "A", RollNumber: "301", Status: student.StatusActive, Gender: "Male", BloodGroup: "B+", Address: "789 Pine Rd", DateOfBirth: "2008-12-10", ParentName: "David Johnson", ParentPhone: "9876543212", AdmissionDate: "2018-04-01"},
		{ID: "S004", Name: "Emily Davis", Email: "emily@example.com", Phone: "1234567893", Class: "Class 1", Section: "B", RollNumber: "102", Status: student.StatusActive, Gender: "Female", BloodGroup: "AB+", Address: "321 Elm St", DateOfBirth: "2010-03-25", ParentName: "Sarah Davis", ParentPhone: "9876543213", AdmissionDate: "2020-04-01"},
		{ID: "S005", Name: "Chris Wilson", Email: "chris@example.com", Phone: "1234567894", Class: "Class 2", Section: "A", RollNumber: "202", Status: student.StatusInactive, Gender: "Male", BloodGroup: "O-", Address: "654 Maple Dr", DateOfBirth: "2009-11-05", ParentName: "Tom Wilson", ParentPhone: "9876543214", AdmissionDate: "2019-04-01"},
	}
}

func Test_studentApi_query(t *testing.T) {
	app := setup(t)
	seeded := seededStudents()

	adminToken := getToken(t, adminIdentity)
	all := make([]interface{}, len(seeded))
	for i, s := range seeded {
		all[i] = s
	}

	tests := []httpTest{
		{name: "Auth required", path: "/v1/students", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{name: "Get all", path: "/v1/students", token: adminToken, wantCode: http.StatusOK, wantData: marchallList(t, all...)},
		{name: "Students can read", path: "/v1/students", token: getToken(t, studentIdentity), wantCode: http.StatusOK, wantData: marchallList(t, all...)},
		{name: "search=jane", path: "/v1/students?search=jane", token: adminToken, wantCode: http.StatusOK, wantData: marchallList(t, seeded[1])},
		{name: "search (unknown)", path: "/v1/students?search=zzz", token: adminToken, wantCode: http.StatusOK, wantData: []byte(`[]`)},
		{name: "class + section", path: "/v1/students?class=Class+1&section=B", token: adminToken, wantCode: http.StatusOK, wantData: marchallList(t, seeded[3])},
		{name: "status=Inactive", path: "/v1/students?status=Inactive", token: adminToken, wantCode: http.StatusOK, wantData: marchallList(t, seeded[4])},
		{name: "Retrieve", path: "/v1/students/S003", token: adminToken, wantCode: http.StatusOK, wantData: marchallObj(t, seeded[2])},
		{name: "Retrieve (unknown)", path: "/v1/students/S999", token: adminToken, wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "student not found"})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodGet, tt.path, tt.token)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_studentApi_create(t *testing.T) {
	app := setup(t)
	adminToken := getToken(t, adminIdentity)

	ns := student.NewStudent{
		Name: "Alice Green", Email: "alice@example.com", Phone: "1234567895",
		Class: "Class 1", Section: "A", RollNumber: "103", Gender: "Female",
		DateOfBirth: "2010-07-01", ParentName: "Bob Green", ParentPhone: "9876543215",
	}

	tests := []httpTest{
		{name: "Auth required", body: marchallObj(t, ns), wantCode: http.StatusUnauthorized},
		{name: "Admin required", body: marchallObj(t, ns), token: getToken(t, studentIdentity), wantCode: http.StatusForbidden, wantData: marchallObj(t, errPermissionDenied)},
		{name: "Validation", body: []byte(`{"name":"No Email"}`), token: adminToken, wantCode: http.StatusBadRequest},
		{name: "Create", body: marchallObj(t, ns), token: adminToken, wantCode: http.StatusCreated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodPost, "/v1/students", tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)

			if tt.wantCode == http.StatusCreated {
				var created student.Student
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
				assert.Equal(t, "S006", created.ID)
				assert.Equal(t, student.StatusActive, created.Status)
				assert.Equal(t, core.Today(), created.AdmissionDate)
				assert.Equal(t, "Alice Green", created.Name)
			}
		})
	}
}

func Test_studentApi_update(t *testing.T) {
	app := setup(t)
	adminToken := getToken(t, adminIdentity)

	body := marchallObj(t, student.UpdateStudent{Class: "Class 2", Status: student.StatusGraduated})
	req, rec := newAuthRequest(http.MethodPut, "/v1/students/S001", adminToken, body)
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var updated student.Student
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Class 2", updated.Class)
	assert.Equal(t, student.StatusGraduated, updated.Status)
	// untouched fields stay
	assert.Equal(t, "John Doe", updated.Name)
	assert.Equal(t, "2020-04-01", updated.AdmissionDate)

	// unknown id
	req, rec = newAuthRequest(http.MethodPut, "/v1/students/S999", adminToken, body)
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func Test_studentApi_delete(t *testing.T) {
	app := setup(t)
	adminToken := getToken(t, adminIdentity)

	req, rec := newAuthRequest(http.MethodDelete, "/v1/students/S005", adminToken)
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	req, rec = newAuthRequest(http.MethodGet, "/v1/students/S005", adminToken)
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// students cannot delete
	req, rec = newAuthRequest(http.MethodDelete, "/v1/students/S004", getToken(t, studentIdentity))
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
