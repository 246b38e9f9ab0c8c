package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edutrack/edutrack/core/fee"
	"github.com/edutrack/edutrack/core/grade"
)

func Test_gradeApi_create(t *testing.T) {
	app := setup(t)
	facultyToken := getToken(t, facultyIdentity)

	nr := grade.NewRecord{StudentID: "S002", Course: "Physics", ExamType: "Final", Marks: 45, TotalMarks: 50}

	tests := []httpTest{
		{name: "Auth required", body: marchallObj(t, nr), wantCode: http.StatusUnauthorized},
		{name: "Staff required", body: marchallObj(t, nr), token: getToken(t, studentIdentity), wantCode: http.StatusForbidden, wantData: marchallObj(t, errPermissionDenied)},
		{
			name: "Unknown student", token: facultyToken, wantCode: http.StatusBadRequest,
			body: marchallObj(t, grade.NewRecord{StudentID: "S999", Course: "Physics", Marks: 10, TotalMarks: 100}),
		},
		{
			name: "Marks above total", token: facultyToken, wantCode: http.StatusBadRequest,
			body: marchallObj(t, grade.NewRecord{StudentID: "S002", Course: "Physics", Marks: 60, TotalMarks: 50}),
		},
		{name: "Create", body: marchallObj(t, nr), token: facultyToken, wantCode: http.StatusCreated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodPost, "/v1/grades", tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)

			if tt.wantCode == http.StatusCreated {
				var created grade.Record
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
				assert.Equal(t, "GRD005", created.ID)
				assert.Equal(t, "Jane Smith", created.StudentName, "student name must be resolved")
				assert.Equal(t, "A+", created.Grade, "45/50 is 90%, an A+")
			}
		})
	}
}

func Test_gradeApi_updateRecomputesLetter(t *testing.T) {
	app := setup(t)
	facultyToken := getToken(t, facultyIdentity)

	marks := 55.0
	body := marchallObj(t, grade.UpdateRecord{Marks: &marks})
	req, rec := newAuthRequest(http.MethodPut, "/v1/grades/GRD003", facultyToken, body)
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var updated grade.Record
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, 55.0, updated.Marks)
	assert.Equal(t, "C", updated.Grade, "55/100 drops the letter to C")
}

func Test_feeApi_create(t *testing.T) {
	app := setup(t)
	adminToken := getToken(t, adminIdentity)

	nr := fee.NewRecord{StudentID: "S005", Semester: "1st Semester 2024", TotalAmount: 4000}

	// fee accounts are admin-only, unlike grades
	req, rec := newAuthRequest(http.MethodPost, "/v1/fees", getToken(t, facultyIdentity), marchallObj(t, nr))
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req, rec = newAuthRequest(http.MethodPost, "/v1/fees", adminToken, marchallObj(t, nr))
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created fee.Record
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "FEE005", created.ID)
	assert.Equal(t, "Chris Wilson", created.StudentName)
	assert.Equal(t, fee.StatusPending, created.Status)
	assert.Equal(t, 4000.0, created.PendingAmount)
	assert.Empty(t, created.PaidDate)
}

func Test_feeApi_recordPayment(t *testing.T) {
	app := setup(t)
	adminToken := getToken(t, adminIdentity)

	pay := func(id string, amount float64) *fee.Record {
		t.Helper()
		req, rec := newAuthRequest(http.MethodPost, "/v1/fees/"+id+"/payments", adminToken, marchallObj(t, fee.Payment{Amount: amount}))
		app.ServeHTTP(rec, req)
		if !assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String()) {
			return nil
		}
		var r fee.Record
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
		return &r
	}

	// FEE004 starts fully pending (0/5000)
	if r := pay("FEE004", 2500); r != nil {
		assert.Equal(t, fee.StatusPartial, r.Status)
		assert.Equal(t, 2500.0, r.PendingAmount)
		assert.NotEmpty(t, r.PaidDate)
	}
	if r := pay("FEE004", 2500); r != nil {
		assert.Equal(t, fee.StatusPaid, r.Status)
		assert.Equal(t, 0.0, r.PendingAmount)
	}

	// zero or negative amounts are rejected
	req, rec := newAuthRequest(http.MethodPost, "/v1/fees/FEE004/payments", adminToken, marchallObj(t, fee.Payment{}))
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// unknown account
	req, rec = newAuthRequest(http.MethodPost, "/v1/fees/FEE999/payments", adminToken, marchallObj(t, fee.Payment{Amount: 10}))
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
