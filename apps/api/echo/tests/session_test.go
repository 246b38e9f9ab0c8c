package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edutrack/edutrack/core/session"
)

type loginResponse struct {
	Token string           `json:"token"`
	User  session.Identity `json:"user"`
}

func Test_sessionApi_login(t *testing.T) {
	app := setup(t)

	creds := func(uname, pwd string) []byte {
		return marchallObj(t, session.Credentials{Username: uname, Password: pwd})
	}

	tests := []httpTest{
		{name: "Wrong password", body: creds("admin", "nope"), wantCode: http.StatusBadRequest, wantData: marchallObj(t, httpErr{Error: "invalid credentials"})},
		{name: "Unknown user", body: creds("ghost", "admin123"), wantCode: http.StatusBadRequest, wantData: marchallObj(t, httpErr{Error: "invalid credentials"})},
		{name: "Missing fields", body: []byte(`{}`), wantCode: http.StatusBadRequest},
		{name: "Admin", body: creds("admin", "admin123"), wantCode: http.StatusOK},
		{name: "Faculty", body: creds("faculty", "faculty123"), wantCode: http.StatusOK},
		{name: "Student", body: creds("student", "student123"), wantCode: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/v1/login", tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)

			if tt.wantCode == http.StatusOK {
				var res loginResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
				assert.NotEmpty(t, res.Token)
				assert.False(t, res.User.IsZero())
			}
		})
	}
}

func Test_sessionApi_loginCarriesStudentID(t *testing.T) {
	app := setup(t)

	body := marchallObj(t, session.Credentials{Username: "student", Password: "student123"})
	req, rec := newRequest(http.MethodPost, "/v1/login", body)
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var res loginResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "S001", res.User.StudentID)
	assert.Equal(t, session.RoleStudent, res.User.Role)
}

func Test_sessionApi_restoreFlow(t *testing.T) {
	app := setup(t)

	// nobody logged in yet
	req, rec := newRequest(http.MethodGet, "/v1/session")
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// log in; the identity is persisted server-side
	body := marchallObj(t, session.Credentials{Username: "admin", Password: "admin123"})
	req, rec = newRequest(http.MethodPost, "/v1/login", body)
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	var res loginResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	req, rec = newRequest(http.MethodGet, "/v1/session")
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	var ident session.Identity
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ident))
	assert.True(t, ident.IsAdmin())

	// logout clears the persisted identity
	req, rec = newAuthRequest(http.MethodPost, "/v1/logout", res.Token)
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	req, rec = newRequest(http.MethodGet, "/v1/session")
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func Test_sessionApi_logoutRequiresAuth(t *testing.T) {
	app := setup(t)

	req, rec := newRequest(http.MethodPost, "/v1/logout")
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
