package echoapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/elimu/core/user"
)

func Test_userAPI_queryStripsPasswords(t *testing.T) {
	app := newTestServer(t)

	req, rec := newRequest(http.MethodGet, "/api/users")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.NotContains(t, rec.Body.String(), "password")
	var items []user.Identity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 3)
	assert.Equal(t, user.Identity{ID: 1, Name: "Super Admin", Email: "admin@college.edu", Role: user.RoleAdmin}, items[0])
}

func Test_userAPI_create(t *testing.T) {
	app := newTestServer(t)

	req, rec := newRequest(http.MethodPost, "/api/users", []byte(`{"name": "New Guy", "email": "new@college.edu", "password": "pwd123", "role": "faculty"}`))
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created user.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 4, created.ID)
	assert.Equal(t, user.RoleFaculty, created.Role)

	tests := []httpTest{
		{
			name:     "duplicate email",
			body:     []byte(`{"name": "Dup", "email": "new@college.edu", "password": "x", "role": "student"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"email": "a user with this email already exists"}`),
		},
		{
			name:     "bad role",
			body:     []byte(`{"name": "X", "email": "x@college.edu", "password": "x", "role": "janitor"}`),
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/api/users", tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_userAPI_destroy(t *testing.T) {
	app := newTestServer(t)

	req, rec := newRequest(http.MethodDelete, "/api/users/3")
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: []byte(`{"ok": true}`)}, rec)

	req, rec = newRequest(http.MethodGet, "/api/users")
	app.ServeHTTP(rec, req)
	var items []user.Identity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	assert.Len(t, items, 2)
}
