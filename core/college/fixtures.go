package college

// Fixture datasets each plane is seeded with on first touch of a collection.
// Seeding is lazy and idempotent: it only happens when the collection is empty.

func FixtureStudents() []Student {
	return []Student{
		{ID: 1, Name: "Aarav Sharma", Email: "aarav@student.edu", Course: "Computer Science", Year: "2nd Year"},
		{ID: 2, Name: "Priya Patel", Email: "priya@student.edu", Course: "Electronics", Year: "1st Year"},
		{ID: 3, Name: "Amit Kumar", Email: "amit@student.edu", Course: "Mechanical", Year: "3rd Year"},
		{ID: 4, Name: "Neha Gupta", Email: "neha@student.edu", Course: "Computer Science", Year: "2nd Year"},
		{ID: 5, Name: "Rohan Singh", Email: "rohan@student.edu", Course: "Civil", Year: "2nd Year"},
	}
}

func FixtureCourses() []Course {
	return []Course{
		{ID: 1, Title: "Mathematics", Code: "MATH101", Credits: 4},
		{ID: 2, Title: "Physics", Code: "PHYS101", Credits: 4},
		{ID: 3, Title: "English", Code: "ENG101", Credits: 3},
		{ID: 4, Title: "Economics", Code: "ECON101", Credits: 3},
		{ID: 5, Title: "History", Code: "HIST101", Credits: 3},
		{ID: 6, Title: "Chemistry", Code: "CHEM101", Credits: 4},
	}
}

func FixtureFaculty() []Faculty {
	return []Faculty{
		{ID: 1, Name: "Prof. Alice Johnson", Department: "Computer Science", Email: "alice@college.edu"},
		{ID: 2, Name: "Dr. Rajesh Kumar", Department: "Mathematics", Email: "rajesh@college.edu"},
		{ID: 3, Name: "Prof. Sarah Lee", Department: "Physics", Email: "sarah@college.edu"},
		{ID: 4, Name: "Dr. Vikram Patel", Department: "Electronics", Email: "vikram@college.edu"},
		{ID: 5, Name: "Prof. Ananya Singh", Department: "Chemistry", Email: "ananya@college.edu"},
	}
}

func FixtureActivities() []Activity {
	return []Activity{
		{ID: 1, Activity: "Aarav registered for MATH101", Time: "2h ago"},
		{ID: 2, Activity: `New course "Chemistry" added`, Time: "1d ago"},
		{ID: 3, Activity: "Prof. Alice published grades", Time: "3d ago"},
		{ID: 4, Activity: "Neha updated profile", Time: "5d ago"},
		{ID: 5, Activity: "New exam schedule published", Time: "1w ago"},
	}
}

func FixtureAttendance() []Attendance {
	return []Attendance{
		{ID: 1, StudentID: 1, CourseID: 1, Date: "2024-01-15", Status: StatusPresent},
		{ID: 2, StudentID: 2, CourseID: 1, Date: "2024-01-15", Status: StatusPresent},
		{ID: 3, StudentID: 3, CourseID: 1, Date: "2024-01-15", Status: StatusPresent},
		{ID: 4, StudentID: 4, CourseID: 1, Date: "2024-01-15", Status: StatusPresent},
		{ID: 5, StudentID: 5, CourseID: 1, Date: "2024-01-15", Status: StatusPresent},
	}
}

func FixtureAssignments() []Assignment {
	return []Assignment{
		{ID: 1, Title: "Math Homework 1", Description: "Complete exercises 1-10 from Chapter 3", CourseID: 1, DueDate: "2024-02-01", CreatedBy: 1},
		{ID: 2, Title: "Physics Lab Report", Description: "Write a lab report on the pendulum experiment", CourseID: 2, DueDate: "2024-02-05", CreatedBy: 2},
		{ID: 3, Title: "English Essay", Description: "Write an essay on Shakespeare", CourseID: 3, DueDate: "2024-02-10", CreatedBy: 1},
		{ID: 4, Title: "Economics Project", Description: "Create a presentation on supply and demand", CourseID: 4, DueDate: "2024-02-15", CreatedBy: 2},
		{ID: 5, Title: "History Presentation", Description: "Prepare a presentation on World War II", CourseID: 5, DueDate: "2024-02-20", CreatedBy: 1},
	}
}

func FixtureExams() []Exam {
	return []Exam{
		{ID: 1, Title: "Math Midterm", CourseID: 1, Date: "2024-03-01", Duration: 120, TotalMarks: 100},
		{ID: 2, Title: "Physics Midterm", CourseID: 2, Date: "2024-03-05", Duration: 90, TotalMarks: 100},
		{ID: 3, Title: "English Midterm", CourseID: 3, Date: "2024-03-10", Duration: 60, TotalMarks: 50},
		{ID: 4, Title: "Economics Midterm", CourseID: 4, Date: "2024-03-15", Duration: 90, TotalMarks: 100},
		{ID: 5, Title: "History Midterm", CourseID: 5, Date: "2024-03-20", Duration: 60, TotalMarks: 50},
	}
}

func FixtureGrades() []Grade {
	return []Grade{
		{ID: 1, StudentID: 1, ExamID: 1, Marks: 85, Grade: "A"},
		{ID: 2, StudentID: 2, ExamID: 1, Marks: 92, Grade: "A+"},
		{ID: 3, StudentID: 3, ExamID: 1, Marks: 78, Grade: "B+"},
		{ID: 4, StudentID: 4, ExamID: 1, Marks: 88, Grade: "A"},
		{ID: 5, StudentID: 5, ExamID: 1, Marks: 75, Grade: "B"},
		{ID: 6, StudentID: 1, ExamID: 2, Marks: 90, Grade: "A+"},
		{ID: 7, StudentID: 2, ExamID: 2, Marks: 82, Grade: "A"},
		{ID: 8, StudentID: 3, ExamID: 2, Marks: 70, Grade: "B"},
		{ID: 9, StudentID: 4, ExamID: 2, Marks: 85, Grade: "A"},
		{ID: 10, StudentID: 5, ExamID: 2, Marks: 68, Grade: "C+"},
	}
}

func FixtureNotifications() []Notification {
	return []Notification{
		{ID: 1, UserID: 1, Title: "Welcome", Message: "Welcome to the College Management System!", Type: TypeInfo, CreatedAt: "2024-01-01T10:00:00Z"},
		{ID: 2, UserID: 2, Title: "Assignment Due", Message: "Math Homework 1 is due soon", Type: TypeWarning, CreatedAt: "2024-01-20T10:00:00Z"},
		{ID: 3, UserID: 3, Title: "Exam Schedule", Message: "Midterm exams have been scheduled", Type: TypeInfo, CreatedAt: "2024-02-01T10:00:00Z"},
		{ID: 4, UserID: 1, Title: "New Student", Message: "A new student has registered", Type: TypeSuccess, Read: true, CreatedAt: "2024-01-15T10:00:00Z"},
		{ID: 5, UserID: 2, Title: "Grade Posted", Message: "Your grades have been posted", Type: TypeInfo, CreatedAt: "2024-03-01T10:00:00Z"},
	}
}

func FixtureMessages() []Message {
	return []Message{
		{ID: 1, SenderID: 1, ReceiverID: 2, Subject: "Question about assignment", Message: "Can you please clarify the assignment requirements?", CreatedAt: "2024-01-25T10:00:00Z"},
		{ID: 2, SenderID: 2, ReceiverID: 1, Subject: "Re: Question about assignment", Message: "Sure, I have clarified the requirements.", CreatedAt: "2024-01-25T11:00:00Z"},
		{ID: 3, SenderID: 1, ReceiverID: 3, Subject: "Exam Query", Message: "When will the midterm exams be scheduled?", CreatedAt: "2024-02-01T10:00:00Z"},
		{ID: 4, SenderID: 3, ReceiverID: 1, Subject: "Re: Exam Query", Message: "The exams will be scheduled for next month.", Read: true, CreatedAt: "2024-02-01T11:00:00Z"},
		{ID: 5, SenderID: 2, ReceiverID: 1, Subject: "Student Progress", Message: "I wanted to discuss a student progress report", CreatedAt: "2024-03-01T10:00:00Z"},
	}
}
