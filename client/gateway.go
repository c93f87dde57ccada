package client

import (
	"context"

	"github.com/trezcool/elimu/core"
	"github.com/trezcool/elimu/core/college"
	"github.com/trezcool/elimu/core/user"
	localdb "github.com/trezcool/elimu/storage/local"
)

// Gateway is the persistence layer the rest of the client talks to. Every call
// goes to the remote API first; when the remote plane fails for any reason the
// call is retried against the durable local store and the caller never sees
// the remote failure. Writes that land on the local plane stay there, there is
// no reconciliation once the remote comes back.
type Gateway struct {
	remote     *restBackend
	local      *localdb.Repository
	localUsers *localdb.UserRepository
	log        core.Logger
}

var _ college.Repository = (*Gateway)(nil)
var _ user.Repository = (*Gateway)(nil)

func NewGateway(conf *core.Config, store *localdb.Store, logger core.Logger) *Gateway {
	return &Gateway{
		remote:     newRESTBackend(conf.Client),
		local:      localdb.NewRepository(store),
		localUsers: localdb.NewUserRepository(store),
		log:        logger,
	}
}

func (g *Gateway) fellBack(op string, err error) {
	g.log.Debug(op+": remote plane unavailable, using local store", err)
}

// Users

func (g *Gateway) QueryAllUsers(ctx context.Context) ([]user.User, error) {
	items, err := g.remote.QueryAllUsers(ctx)
	if err != nil {
		g.fellBack("users.query", err)
		return g.localUsers.QueryAllUsers(ctx)
	}
	return items, nil
}

func (g *Gateway) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	created, err := g.remote.CreateUser(ctx, usr)
	if err != nil {
		g.fellBack("users.create", err)
		return g.localUsers.CreateUser(ctx, usr)
	}
	return created, nil
}

func (g *Gateway) DeleteUser(ctx context.Context, id int) error {
	if err := g.remote.DeleteUser(ctx, id); err != nil {
		g.fellBack("users.delete", err)
		return g.localUsers.DeleteUser(ctx, id)
	}
	return nil
}

// Students

func (g *Gateway) QueryStudents(ctx context.Context) ([]college.Student, error) {
	items, err := g.remote.QueryStudents(ctx)
	if err != nil {
		g.fellBack("students.query", err)
		return g.local.QueryStudents(ctx)
	}
	return items, nil
}

func (g *Gateway) CreateStudent(ctx context.Context, n college.NewStudent) (college.Student, error) {
	created, err := g.remote.CreateStudent(ctx, n)
	if err != nil {
		g.fellBack("students.create", err)
		return g.local.CreateStudent(ctx, n)
	}
	return created, nil
}

func (g *Gateway) UpdateStudent(ctx context.Context, id int, up college.UpdateStudent) (college.Student, error) {
	updated, err := g.remote.UpdateStudent(ctx, id, up)
	if err != nil {
		g.fellBack("students.update", err)
		return g.local.UpdateStudent(ctx, id, up)
	}
	return updated, nil
}

func (g *Gateway) DeleteStudent(ctx context.Context, id int) error {
	if err := g.remote.DeleteStudent(ctx, id); err != nil {
		g.fellBack("students.delete", err)
		return g.local.DeleteStudent(ctx, id)
	}
	return nil
}

// Courses

func (g *Gateway) QueryCourses(ctx context.Context) ([]college.Course, error) {
	items, err := g.remote.QueryCourses(ctx)
	if err != nil {
		g.fellBack("courses.query", err)
		return g.local.QueryCourses(ctx)
	}
	return items, nil
}

func (g *Gateway) CreateCourse(ctx context.Context, n college.NewCourse) (college.Course, error) {
	created, err := g.remote.CreateCourse(ctx, n)
	if err != nil {
		g.fellBack("courses.create", err)
		return g.local.CreateCourse(ctx, n)
	}
	return created, nil
}

func (g *Gateway) DeleteCourse(ctx context.Context, id int) error {
	if err := g.remote.DeleteCourse(ctx, id); err != nil {
		g.fellBack("courses.delete", err)
		return g.local.DeleteCourse(ctx, id)
	}
	return nil
}

// Faculty

func (g *Gateway) QueryFaculty(ctx context.Context) ([]college.Faculty, error) {
	items, err := g.remote.QueryFaculty(ctx)
	if err != nil {
		g.fellBack("faculty.query", err)
		return g.local.QueryFaculty(ctx)
	}
	return items, nil
}

func (g *Gateway) CreateFaculty(ctx context.Context, n college.NewFaculty) (college.Faculty, error) {
	created, err := g.remote.CreateFaculty(ctx, n)
	if err != nil {
		g.fellBack("faculty.create", err)
		return g.local.CreateFaculty(ctx, n)
	}
	return created, nil
}

func (g *Gateway) DeleteFaculty(ctx context.Context, id int) error {
	if err := g.remote.DeleteFaculty(ctx, id); err != nil {
		g.fellBack("faculty.delete", err)
		return g.local.DeleteFaculty(ctx, id)
	}
	return nil
}

// Activities

func (g *Gateway) QueryActivities(ctx context.Context) ([]college.Activity, error) {
	items, err := g.remote.QueryActivities(ctx)
	if err != nil {
		g.fellBack("activities.query", err)
		return g.local.QueryActivities(ctx)
	}
	return items, nil
}

// Attendance

func (g *Gateway) QueryAttendance(ctx context.Context, f college.AttendanceFilter) ([]college.Attendance, error) {
	items, err := g.remote.QueryAttendance(ctx, f)
	if err != nil {
		g.fellBack("attendance.query", err)
		return g.local.QueryAttendance(ctx, f)
	}
	return items, nil
}

func (g *Gateway) CreateAttendance(ctx context.Context, n college.NewAttendance) (college.Attendance, error) {
	created, err := g.remote.CreateAttendance(ctx, n)
	if err != nil {
		g.fellBack("attendance.create", err)
		return g.local.CreateAttendance(ctx, n)
	}
	return created, nil
}

func (g *Gateway) UpdateAttendance(ctx context.Context, id int, up college.UpdateAttendance) (college.Attendance, error) {
	updated, err := g.remote.UpdateAttendance(ctx, id, up)
	if err != nil {
		g.fellBack("attendance.update", err)
		return g.local.UpdateAttendance(ctx, id, up)
	}
	return updated, nil
}

// Assignments

func (g *Gateway) QueryAssignments(ctx context.Context, f college.AssignmentFilter) ([]college.Assignment, error) {
	items, err := g.remote.QueryAssignments(ctx, f)
	if err != nil {
		g.fellBack("assignments.query", err)
		return g.local.QueryAssignments(ctx, f)
	}
	return items, nil
}

func (g *Gateway) CreateAssignment(ctx context.Context, n college.NewAssignment) (college.Assignment, error) {
	created, err := g.remote.CreateAssignment(ctx, n)
	if err != nil {
		g.fellBack("assignments.create", err)
		return g.local.CreateAssignment(ctx, n)
	}
	return created, nil
}

func (g *Gateway) DeleteAssignment(ctx context.Context, id int) error {
	if err := g.remote.DeleteAssignment(ctx, id); err != nil {
		g.fellBack("assignments.delete", err)
		return g.local.DeleteAssignment(ctx, id)
	}
	return nil
}

// Exams

func (g *Gateway) QueryExams(ctx context.Context, f college.ExamFilter) ([]college.Exam, error) {
	items, err := g.remote.QueryExams(ctx, f)
	if err != nil {
		g.fellBack("exams.query", err)
		return g.local.QueryExams(ctx, f)
	}
	return items, nil
}

func (g *Gateway) CreateExam(ctx context.Context, n college.NewExam) (college.Exam, error) {
	created, err := g.remote.CreateExam(ctx, n)
	if err != nil {
		g.fellBack("exams.create", err)
		return g.local.CreateExam(ctx, n)
	}
	return created, nil
}

func (g *Gateway) DeleteExam(ctx context.Context, id int) error {
	if err := g.remote.DeleteExam(ctx, id); err != nil {
		g.fellBack("exams.delete", err)
		return g.local.DeleteExam(ctx, id)
	}
	return nil
}

// Grades

func (g *Gateway) QueryGrades(ctx context.Context, f college.GradeFilter) ([]college.Grade, error) {
	items, err := g.remote.QueryGrades(ctx, f)
	if err != nil {
		g.fellBack("grades.query", err)
		return g.local.QueryGrades(ctx, f)
	}
	return items, nil
}

func (g *Gateway) CreateGrade(ctx context.Context, n college.NewGrade) (college.Grade, error) {
	created, err := g.remote.CreateGrade(ctx, n)
	if err != nil {
		g.fellBack("grades.create", err)
		return g.local.CreateGrade(ctx, n)
	}
	return created, nil
}

func (g *Gateway) UpdateGrade(ctx context.Context, id int, up college.UpdateGrade) (college.Grade, error) {
	updated, err := g.remote.UpdateGrade(ctx, id, up)
	if err != nil {
		g.fellBack("grades.update", err)
		return g.local.UpdateGrade(ctx, id, up)
	}
	return updated, nil
}

// Notifications

func (g *Gateway) QueryNotifications(ctx context.Context, f college.NotificationFilter) ([]college.Notification, error) {
	items, err := g.remote.QueryNotifications(ctx, f)
	if err != nil {
		g.fellBack("notifications.query", err)
		return g.local.QueryNotifications(ctx, f)
	}
	return items, nil
}

func (g *Gateway) CreateNotification(ctx context.Context, n college.NewNotification) (college.Notification, error) {
	created, err := g.remote.CreateNotification(ctx, n)
	if err != nil {
		g.fellBack("notifications.create", err)
		return g.local.CreateNotification(ctx, n)
	}
	return created, nil
}

func (g *Gateway) MarkNotificationRead(ctx context.Context, id int) error {
	if err := g.remote.MarkNotificationRead(ctx, id); err != nil {
		g.fellBack("notifications.read", err)
		return g.local.MarkNotificationRead(ctx, id)
	}
	return nil
}

// Messages

func (g *Gateway) QueryMessages(ctx context.Context, f college.MessageFilter) ([]college.Message, error) {
	items, err := g.remote.QueryMessages(ctx, f)
	if err != nil {
		g.fellBack("messages.query", err)
		return g.local.QueryMessages(ctx, f)
	}
	return items, nil
}

func (g *Gateway) CreateMessage(ctx context.Context, n college.NewMessage) (college.Message, error) {
	created, err := g.remote.CreateMessage(ctx, n)
	if err != nil {
		g.fellBack("messages.create", err)
		return g.local.CreateMessage(ctx, n)
	}
	return created, nil
}

func (g *Gateway) MarkMessageRead(ctx context.Context, id int) error {
	if err := g.remote.MarkMessageRead(ctx, id); err != nil {
		g.fellBack("messages.read", err)
		return g.local.MarkMessageRead(ctx, id)
	}
	return nil
}
