package user

// Fixtures returns the user directory each plane is seeded with on first touch.
func Fixtures() []User {
	return []User{
		{ID: 1, Name: "Super Admin", Email: "admin@college.edu", Password: "admin123", Role: RoleAdmin},
		{ID: 2, Name: "Prof. Alice", Email: "alice@college.edu", Password: "faculty123", Role: RoleFaculty},
		{ID: 3, Name: "Bob Student", Email: "bob@student.edu", Password: "student123", Role: RoleStudent},
	}
}
