package client

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/elimu/core/user"
)

func Test_Allowed(t *testing.T) {
	admin := &user.Identity{ID: 1, Role: user.RoleAdmin}
	faculty := &user.Identity{ID: 2, Role: user.RoleFaculty}
	student := &user.Identity{ID: 3, Role: user.RoleStudent}

	tests := []struct {
		route                   string
		admin, faculty, student bool
	}{
		{"/dashboard", true, true, true},
		{"/students", true, false, false},
		{"/courses", true, true, false},
		{"/faculty", true, false, false},
		{"/finance", true, false, false},
		{"/academics", true, true, false},
		{"/admin/users", true, false, false},
		{"/attendance", true, true, false},
		{"/assignments", true, true, false},
		{"/exams", true, true, false},
		{"/grades", true, true, false},
		{"/notifications", true, true, true},
		{"/messages", true, true, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.admin, Allowed(admin, tt.route), "admin %s", tt.route)
		assert.Equal(t, tt.faculty, Allowed(faculty, tt.route), "faculty %s", tt.route)
		assert.Equal(t, tt.student, Allowed(student, tt.route), "student %s", tt.route)
	}

	// unknown routes and anonymous visitors are denied
	assert.False(t, Allowed(admin, "/unknown"))
	assert.False(t, Allowed(nil, "/dashboard"))
}

func Test_AllowedRoles(t *testing.T) {
	assert.Equal(t, []string{user.RoleAdmin}, AllowedRoles("/students"))
	assert.Empty(t, AllowedRoles("/unknown"))
}
