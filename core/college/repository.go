package college

import (
	"context"
	"errors"
)

// ErrNotFound is returned when an update targets an id that does not exist.
// Deletes are idempotent and never return it.
var ErrNotFound = errors.New("record not found")

type (
	StudentRepository interface {
		QueryStudents(ctx context.Context) ([]Student, error)
		CreateStudent(ctx context.Context, n NewStudent) (Student, error)
		UpdateStudent(ctx context.Context, id int, up UpdateStudent) (Student, error)
		DeleteStudent(ctx context.Context, id int) error
	}

	CourseRepository interface {
		QueryCourses(ctx context.Context) ([]Course, error)
		CreateCourse(ctx context.Context, n NewCourse) (Course, error)
		DeleteCourse(ctx context.Context, id int) error
	}

	FacultyRepository interface {
		QueryFaculty(ctx context.Context) ([]Faculty, error)
		CreateFaculty(ctx context.Context, n NewFaculty) (Faculty, error)
		DeleteFaculty(ctx context.Context, id int) error
	}

	ActivityRepository interface {
		QueryActivities(ctx context.Context) ([]Activity, error)
	}

	AttendanceRepository interface {
		QueryAttendance(ctx context.Context, f AttendanceFilter) ([]Attendance, error)
		CreateAttendance(ctx context.Context, n NewAttendance) (Attendance, error)
		UpdateAttendance(ctx context.Context, id int, up UpdateAttendance) (Attendance, error)
	}

	AssignmentRepository interface {
		QueryAssignments(ctx context.Context, f AssignmentFilter) ([]Assignment, error)
		CreateAssignment(ctx context.Context, n NewAssignment) (Assignment, error)
		DeleteAssignment(ctx context.Context, id int) error
	}

	ExamRepository interface {
		QueryExams(ctx context.Context, f ExamFilter) ([]Exam, error)
		CreateExam(ctx context.Context, n NewExam) (Exam, error)
		DeleteExam(ctx context.Context, id int) error
	}

	GradeRepository interface {
		QueryGrades(ctx context.Context, f GradeFilter) ([]Grade, error)
		CreateGrade(ctx context.Context, n NewGrade) (Grade, error)
		UpdateGrade(ctx context.Context, id int, up UpdateGrade) (Grade, error)
	}

	NotificationRepository interface {
		QueryNotifications(ctx context.Context, f NotificationFilter) ([]Notification, error)
		CreateNotification(ctx context.Context, n NewNotification) (Notification, error)
		MarkNotificationRead(ctx context.Context, id int) error
	}

	MessageRepository interface {
		QueryMessages(ctx context.Context, f MessageFilter) ([]Message, error)
		CreateMessage(ctx context.Context, n NewMessage) (Message, error)
		MarkMessageRead(ctx context.Context, id int) error
	}

	// Repository is one full storage plane. Both the relational backend and
	// the durable local store implement it, as does the gateway itself.
	Repository interface {
		StudentRepository
		CourseRepository
		FacultyRepository
		ActivityRepository
		AttendanceRepository
		AssignmentRepository
		ExamRepository
		GradeRepository
		NotificationRepository
		MessageRepository
	}
)
