package echoapi

import (
	"net/http"
	"testing"

	"github.com/trezcool/elimu/core/user"
)

func Test_login(t *testing.T) {
	app := newTestServer(t)

	tests := []httpTest{
		{
			name:     "valid credentials return the identity",
			body:     []byte(`{"email": "bob@student.edu", "password": "student123"}`),
			wantCode: http.StatusOK,
			wantData: marchallObj(t, user.Identity{ID: 3, Name: "Bob Student", Email: "bob@student.edu", Role: user.RoleStudent}),
		},
		{
			name:     "email matching is exact, wrong case is a 401",
			body:     []byte(`{"email": "BOB@Student.edu", "password": "student123"}`),
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, httpErr{Error: "invalid credentials"}),
		},
		{
			name:     "wrong password is a 401",
			body:     []byte(`{"email": "bob@student.edu", "password": "nope"}`),
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, httpErr{Error: "invalid credentials"}),
		},
		{
			name:     "unknown email is a 401",
			body:     []byte(`{"email": "nobody@student.edu", "password": "student123"}`),
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, httpErr{Error: "invalid credentials"}),
		},
		{
			name:     "missing fields are a 400",
			body:     []byte(`{}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"email": "this field is required", "password": "this field is required"}`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/auth/login", tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
