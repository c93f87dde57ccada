package user

import (
	"crypto/subtle"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/elimu/core"
)

// Roles
const (
	RoleAdmin   = "admin"
	RoleFaculty = "faculty"
	RoleStudent = "student"
)

var AllRoles = []string{RoleAdmin, RoleFaculty, RoleStudent}

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// User is an authentication subject. The password is an opaque secret compared
// verbatim; it travels with the record through the stores but is stripped from
// anything handed back to callers (see Identity).
type User struct {
	ID       int    `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Email    string `json:"email" db:"email"`
	Password string `json:"password,omitempty" db:"password"`
	Role     string `json:"role" db:"role"`
}

// CheckPassword compares the given password verbatim.
func (u User) CheckPassword(pwd string) bool {
	if u.Password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(u.Password), []byte(pwd)) == 1
}

func (u User) IsAdmin() bool   { return u.Role == RoleAdmin }
func (u User) IsFaculty() bool { return u.Role == RoleFaculty }
func (u User) IsStudent() bool { return u.Role == RoleStudent }

// Identity is the session-facing subset of User; the password is never retained.
type Identity struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u User) Identity() Identity {
	return Identity{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// NewUser contains information needed to create a new User.
type NewUser struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=admin faculty student"`
}

func (nu *NewUser) Validate(validate *validator.Validate) error {
	nu.Name = core.CleanString(nu.Name)
	nu.Email = core.CleanString(nu.Email, true /* lower */)
	return validate.Struct(nu)
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Validate checks the payload shape only. The email is left untouched so the
// directory match stays exact.
func (c *Credentials) Validate(validate *validator.Validate) error {
	return validate.Struct(c)
}
