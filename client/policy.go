package client

import (
	"github.com/trezcool/elimu/core/user"
)

// routePolicy maps each client route to the roles allowed to open it. Routes
// not listed here are denied for everyone.
var routePolicy = map[string][]string{
	"/dashboard":     {user.RoleAdmin, user.RoleFaculty, user.RoleStudent},
	"/students":      {user.RoleAdmin},
	"/courses":       {user.RoleAdmin, user.RoleFaculty},
	"/faculty":       {user.RoleAdmin},
	"/finance":       {user.RoleAdmin},
	"/academics":     {user.RoleAdmin, user.RoleFaculty},
	"/admin/users":   {user.RoleAdmin},
	"/attendance":    {user.RoleAdmin, user.RoleFaculty},
	"/assignments":   {user.RoleAdmin, user.RoleFaculty},
	"/exams":         {user.RoleAdmin, user.RoleFaculty},
	"/grades":        {user.RoleAdmin, user.RoleFaculty},
	"/notifications": {user.RoleAdmin, user.RoleFaculty, user.RoleStudent},
	"/messages":      {user.RoleAdmin, user.RoleFaculty, user.RoleStudent},
}

// AllowedRoles returns the roles that may open the given route.
func AllowedRoles(route string) []string {
	roles := routePolicy[route]
	out := make([]string, len(roles))
	copy(out, roles)
	return out
}

// Allowed reports whether the identity may open the route. A nil identity is
// an anonymous visitor and is always denied.
func Allowed(ident *user.Identity, route string) bool {
	for _, role := range routePolicy[route] {
		if ident != nil && ident.Role == role {
			return true
		}
	}
	return false
}
