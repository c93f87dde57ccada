package database

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/elimu/core/college"
)

// Repository is the relational plane. Listings come back newest first and
// referenced records are joined in as display names.
type Repository struct {
	db *sqlx.DB

	nowFunc func() time.Time
}

var _ college.Repository = (*Repository)(nil)

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db, nowFunc: time.Now}
}

func (repo *Repository) stamp() string {
	return repo.nowFunc().UTC().Format(time.RFC3339)
}

func notFoundOr(err error, msg string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return college.ErrNotFound
	}
	return errors.Wrap(err, msg)
}

// Students

func (repo *Repository) QueryStudents(ctx context.Context) ([]college.Student, error) {
	items := make([]college.Student, 0)
	err := repo.db.SelectContext(ctx, &items, `SELECT * FROM student ORDER BY id DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "querying students")
	}
	return items, nil
}

func (repo *Repository) getStudent(ctx context.Context, id int) (college.Student, error) {
	var item college.Student
	err := repo.db.GetContext(ctx, &item, `SELECT * FROM student WHERE id = $1`, id)
	if err != nil {
		return college.Student{}, notFoundOr(err, "getting student")
	}
	return item, nil
}

func (repo *Repository) CreateStudent(ctx context.Context, n college.NewStudent) (college.Student, error) {
	var id int
	err := repo.db.QueryRowContext(ctx,
		`INSERT INTO student (name, email, course, year) VALUES ($1, $2, $3, $4) RETURNING id`,
		n.Name, n.Email, n.Course, n.Year,
	).Scan(&id)
	if err != nil {
		return college.Student{}, errors.Wrap(err, "creating student")
	}
	return college.Student{ID: id, Name: n.Name, Email: n.Email, Course: n.Course, Year: n.Year}, nil
}

func (repo *Repository) UpdateStudent(ctx context.Context, id int, up college.UpdateStudent) (college.Student, error) {
	item, err := repo.getStudent(ctx, id)
	if err != nil {
		return college.Student{}, err
	}
	if up.Name != nil {
		item.Name = *up.Name
	}
	if up.Email != nil {
		item.Email = *up.Email
	}
	if up.Course != nil {
		item.Course = *up.Course
	}
	if up.Year != nil {
		item.Year = *up.Year
	}
	_, err = repo.db.ExecContext(ctx,
		`UPDATE student SET name = $1, email = $2, course = $3, year = $4 WHERE id = $5`,
		item.Name, item.Email, item.Course, item.Year, id,
	)
	if err != nil {
		return college.Student{}, errors.Wrap(err, "updating student")
	}
	return item, nil
}

func (repo *Repository) DeleteStudent(ctx context.Context, id int) error {
	_, err := repo.db.ExecContext(ctx, `DELETE FROM student WHERE id = $1`, id)
	return errors.Wrap(err, "deleting student")
}

// Courses

func (repo *Repository) QueryCourses(ctx context.Context) ([]college.Course, error) {
	items := make([]college.Course, 0)
	err := repo.db.SelectContext(ctx, &items, `SELECT * FROM course ORDER BY id DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "querying courses")
	}
	return items, nil
}

func (repo *Repository) CreateCourse(ctx context.Context, n college.NewCourse) (college.Course, error) {
	var id int
	err := repo.db.QueryRowContext(ctx,
		`INSERT INTO course (title, code, credits) VALUES ($1, $2, $3) RETURNING id`,
		n.Title, n.Code, n.Credits,
	).Scan(&id)
	if err != nil {
		return college.Course{}, errors.Wrap(err, "creating course")
	}
	return college.Course{ID: id, Title: n.Title, Code: n.Code, Credits: n.Credits}, nil
}

func (repo *Repository) DeleteCourse(ctx context.Context, id int) error {
	_, err := repo.db.ExecContext(ctx, `DELETE FROM course WHERE id = $1`, id)
	return errors.Wrap(err, "deleting course")
}

// Faculty

func (repo *Repository) QueryFaculty(ctx context.Context) ([]college.Faculty, error) {
	items := make([]college.Faculty, 0)
	err := repo.db.SelectContext(ctx, &items, `SELECT * FROM faculty ORDER BY id DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "querying faculty")
	}
	return items, nil
}

func (repo *Repository) CreateFaculty(ctx context.Context, n college.NewFaculty) (college.Faculty, error) {
	var id int
	err := repo.db.QueryRowContext(ctx,
		`INSERT INTO faculty (name, department, email) VALUES ($1, $2, $3) RETURNING id`,
		n.Name, n.Department, n.Email,
	).Scan(&id)
	if err != nil {
		return college.Faculty{}, errors.Wrap(err, "creating faculty")
	}
	return college.Faculty{ID: id, Name: n.Name, Department: n.Department, Email: n.Email}, nil
}

func (repo *Repository) DeleteFaculty(ctx context.Context, id int) error {
	_, err := repo.db.ExecContext(ctx, `DELETE FROM faculty WHERE id = $1`, id)
	return errors.Wrap(err, "deleting faculty")
}

// Activities

func (repo *Repository) QueryActivities(ctx context.Context) ([]college.Activity, error) {
	items := make([]college.Activity, 0)
	err := repo.db.SelectContext(ctx, &items, `SELECT * FROM activity ORDER BY id DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "querying activities")
	}
	return items, nil
}

// Attendance

const attendanceQuery = `
SELECT a.*, COALESCE(s.name, '') AS student_name, COALESCE(c.title, '') AS course_title
FROM attendance a
LEFT JOIN student s ON s.id = a.student_id
LEFT JOIN course c ON c.id = a.course_id`

func (repo *Repository) QueryAttendance(ctx context.Context, f college.AttendanceFilter) ([]college.Attendance, error) {
	q := attendanceQuery
	var clauses []string
	var args []interface{}
	if f.StudentID != 0 {
		args = append(args, f.StudentID)
		clauses = append(clauses, "a.student_id = $"+itoa(len(args)))
	}
	if f.CourseID != 0 {
		args = append(args, f.CourseID)
		clauses = append(clauses, "a.course_id = $"+itoa(len(args)))
	}
	if f.Date != "" {
		args = append(args, f.Date)
		clauses = append(clauses, "a.date = $"+itoa(len(args)))
	}
	q += whereClause(clauses) + ` ORDER BY a.id DESC`

	items := make([]college.Attendance, 0)
	if err := repo.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, errors.Wrap(err, "querying attendance")
	}
	return items, nil
}

func (repo *Repository) getAttendance(ctx context.Context, id int) (college.Attendance, error) {
	var item college.Attendance
	err := repo.db.GetContext(ctx, &item, attendanceQuery+` WHERE a.id = $1`, id)
	if err != nil {
		return college.Attendance{}, notFoundOr(err, "getting attendance")
	}
	return item, nil
}

func (repo *Repository) CreateAttendance(ctx context.Context, n college.NewAttendance) (college.Attendance, error) {
	var id int
	err := repo.db.QueryRowContext(ctx,
		`INSERT INTO attendance (student_id, course_id, date, status) VALUES ($1, $2, $3, $4) RETURNING id`,
		n.StudentID, n.CourseID, n.Date, n.Status,
	).Scan(&id)
	if err != nil {
		return college.Attendance{}, errors.Wrap(err, "creating attendance")
	}
	return repo.getAttendance(ctx, id)
}

func (repo *Repository) UpdateAttendance(ctx context.Context, id int, up college.UpdateAttendance) (college.Attendance, error) {
	item, err := repo.getAttendance(ctx, id)
	if err != nil {
		return college.Attendance{}, err
	}
	if up.StudentID != nil {
		item.StudentID = *up.StudentID
	}
	if up.CourseID != nil {
		item.CourseID = *up.CourseID
	}
	if up.Date != nil {
		item.Date = *up.Date
	}
	if up.Status != nil {
		item.Status = *up.Status
	}
	_, err = repo.db.ExecContext(ctx,
		`UPDATE attendance SET student_id = $1, course_id = $2, date = $3, status = $4 WHERE id = $5`,
		item.StudentID, item.CourseID, item.Date, item.Status, id,
	)
	if err != nil {
		return college.Attendance{}, errors.Wrap(err, "updating attendance")
	}
	return repo.getAttendance(ctx, id)
}

// Assignments

const assignmentQuery = `
SELECT a.*, COALESCE(c.title, '') AS course_title, COALESCE(u.name, '') AS creator_name
FROM assignment a
LEFT JOIN course c ON c.id = a.course_id
LEFT JOIN "user" u ON u.id = a.created_by`

func (repo *Repository) QueryAssignments(ctx context.Context, f college.AssignmentFilter) ([]college.Assignment, error) {
	q := assignmentQuery
	var args []interface{}
	if f.CourseID != 0 {
		q += ` WHERE a.course_id = $1`
		args = append(args, f.CourseID)
	}
	q += ` ORDER BY a.id DESC`

	items := make([]college.Assignment, 0)
	if err := repo.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, errors.Wrap(err, "querying assignments")
	}
	return items, nil
}

func (repo *Repository) getAssignment(ctx context.Context, id int) (college.Assignment, error) {
	var item college.Assignment
	err := repo.db.GetContext(ctx, &item, assignmentQuery+` WHERE a.id = $1`, id)
	if err != nil {
		return college.Assignment{}, notFoundOr(err, "getting assignment")
	}
	return item, nil
}

func (repo *Repository) CreateAssignment(ctx context.Context, n college.NewAssignment) (college.Assignment, error) {
	var id int
	err := repo.db.QueryRowContext(ctx,
		`INSERT INTO assignment (title, description, course_id, due_date, created_by) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		n.Title, n.Description, n.CourseID, n.DueDate, n.CreatedBy,
	).Scan(&id)
	if err != nil {
		return college.Assignment{}, errors.Wrap(err, "creating assignment")
	}
	return repo.getAssignment(ctx, id)
}

func (repo *Repository) DeleteAssignment(ctx context.Context, id int) error {
	_, err := repo.db.ExecContext(ctx, `DELETE FROM assignment WHERE id = $1`, id)
	return errors.Wrap(err, "deleting assignment")
}

// Exams

const examQuery = `
SELECT e.*, COALESCE(c.title, '') AS course_title
FROM exam e
LEFT JOIN course c ON c.id = e.course_id`

func (repo *Repository) QueryExams(ctx context.Context, f college.ExamFilter) ([]college.Exam, error) {
	q := examQuery
	var args []interface{}
	if f.CourseID != 0 {
		q += ` WHERE e.course_id = $1`
		args = append(args, f.CourseID)
	}
	q += ` ORDER BY e.id DESC`

	items := make([]college.Exam, 0)
	if err := repo.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, errors.Wrap(err, "querying exams")
	}
	return items, nil
}

func (repo *Repository) getExam(ctx context.Context, id int) (college.Exam, error) {
	var item college.Exam
	err := repo.db.GetContext(ctx, &item, examQuery+` WHERE e.id = $1`, id)
	if err != nil {
		return college.Exam{}, notFoundOr(err, "getting exam")
	}
	return item, nil
}

func (repo *Repository) CreateExam(ctx context.Context, n college.NewExam) (college.Exam, error) {
	var id int
	err := repo.db.QueryRowContext(ctx,
		`INSERT INTO exam (title, course_id, date, duration, total_marks) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		n.Title, n.CourseID, n.Date, n.Duration, n.TotalMarks,
	).Scan(&id)
	if err != nil {
		return college.Exam{}, errors.Wrap(err, "creating exam")
	}
	return repo.getExam(ctx, id)
}

func (repo *Repository) DeleteExam(ctx context.Context, id int) error {
	_, err := repo.db.ExecContext(ctx, `DELETE FROM exam WHERE id = $1`, id)
	return errors.Wrap(err, "deleting exam")
}

// Grades

const gradeQuery = `
SELECT g.*, COALESCE(s.name, '') AS student_name, COALESCE(e.title, '') AS exam_title
FROM grade g
LEFT JOIN student s ON s.id = g.student_id
LEFT JOIN exam e ON e.id = g.exam_id`

func (repo *Repository) QueryGrades(ctx context.Context, f college.GradeFilter) ([]college.Grade, error) {
	q := gradeQuery
	var clauses []string
	var args []interface{}
	if f.StudentID != 0 {
		args = append(args, f.StudentID)
		clauses = append(clauses, "g.student_id = $"+itoa(len(args)))
	}
	if f.ExamID != 0 {
		args = append(args, f.ExamID)
		clauses = append(clauses, "g.exam_id = $"+itoa(len(args)))
	}
	q += whereClause(clauses) + ` ORDER BY g.id DESC`

	items := make([]college.Grade, 0)
	if err := repo.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, errors.Wrap(err, "querying grades")
	}
	return items, nil
}

func (repo *Repository) getGrade(ctx context.Context, id int) (college.Grade, error) {
	var item college.Grade
	err := repo.db.GetContext(ctx, &item, gradeQuery+` WHERE g.id = $1`, id)
	if err != nil {
		return college.Grade{}, notFoundOr(err, "getting grade")
	}
	return item, nil
}

func (repo *Repository) CreateGrade(ctx context.Context, n college.NewGrade) (college.Grade, error) {
	var id int
	err := repo.db.QueryRowContext(ctx,
		`INSERT INTO grade (student_id, exam_id, marks, grade) VALUES ($1, $2, $3, $4) RETURNING id`,
		n.StudentID, n.ExamID, n.Marks, n.Grade,
	).Scan(&id)
	if err != nil {
		return college.Grade{}, errors.Wrap(err, "creating grade")
	}
	return repo.getGrade(ctx, id)
}

func (repo *Repository) UpdateGrade(ctx context.Context, id int, up college.UpdateGrade) (college.Grade, error) {
	item, err := repo.getGrade(ctx, id)
	if err != nil {
		return college.Grade{}, err
	}
	if up.StudentID != nil {
		item.StudentID = *up.StudentID
	}
	if up.ExamID != nil {
		item.ExamID = *up.ExamID
	}
	if up.Marks != nil {
		item.Marks = *up.Marks
		item.Grade = college.CalculateGrade(item.Marks)
	}
	if up.Grade != nil {
		item.Grade = *up.Grade
	}
	_, err = repo.db.ExecContext(ctx,
		`UPDATE grade SET student_id = $1, exam_id = $2, marks = $3, grade = $4 WHERE id = $5`,
		item.StudentID, item.ExamID, item.Marks, item.Grade, id,
	)
	if err != nil {
		return college.Grade{}, errors.Wrap(err, "updating grade")
	}
	return repo.getGrade(ctx, id)
}

// Notifications

func (repo *Repository) QueryNotifications(ctx context.Context, f college.NotificationFilter) ([]college.Notification, error) {
	q := `SELECT * FROM notification`
	var clauses []string
	var args []interface{}
	if f.UserID != 0 {
		args = append(args, f.UserID)
		clauses = append(clauses, "user_id = $"+itoa(len(args)))
	}
	if f.Unread {
		clauses = append(clauses, "read = FALSE")
	}
	q += whereClause(clauses) + ` ORDER BY id DESC`

	items := make([]college.Notification, 0)
	if err := repo.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, errors.Wrap(err, "querying notifications")
	}
	return items, nil
}

func (repo *Repository) CreateNotification(ctx context.Context, n college.NewNotification) (college.Notification, error) {
	item := college.Notification{
		UserID:    n.UserID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		CreatedAt: repo.stamp(),
	}
	err := repo.db.QueryRowContext(ctx,
		`INSERT INTO notification (user_id, title, message, type, read, created_at) VALUES ($1, $2, $3, $4, FALSE, $5) RETURNING id`,
		item.UserID, item.Title, item.Message, item.Type, item.CreatedAt,
	).Scan(&item.ID)
	if err != nil {
		return college.Notification{}, errors.Wrap(err, "creating notification")
	}
	return item, nil
}

func (repo *Repository) MarkNotificationRead(ctx context.Context, id int) error {
	_, err := repo.db.ExecContext(ctx, `UPDATE notification SET read = TRUE WHERE id = $1`, id)
	return errors.Wrap(err, "marking notification read")
}

// Messages

const messageQuery = `
SELECT m.*, COALESCE(su.name, '') AS sender_name, COALESCE(ru.name, '') AS receiver_name
FROM message m
LEFT JOIN "user" su ON su.id = m.sender_id
LEFT JOIN "user" ru ON ru.id = m.receiver_id`

func (repo *Repository) QueryMessages(ctx context.Context, f college.MessageFilter) ([]college.Message, error) {
	q := messageQuery
	var args []interface{}
	if f.UserID != 0 {
		q += ` WHERE m.sender_id = $1 OR m.receiver_id = $1`
		args = append(args, f.UserID)
	}
	q += ` ORDER BY m.id DESC`

	items := make([]college.Message, 0)
	if err := repo.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, errors.Wrap(err, "querying messages")
	}
	return items, nil
}

func (repo *Repository) getMessage(ctx context.Context, id int) (college.Message, error) {
	var item college.Message
	err := repo.db.GetContext(ctx, &item, messageQuery+` WHERE m.id = $1`, id)
	if err != nil {
		return college.Message{}, notFoundOr(err, "getting message")
	}
	return item, nil
}

func (repo *Repository) CreateMessage(ctx context.Context, n college.NewMessage) (college.Message, error) {
	var id int
	err := repo.db.QueryRowContext(ctx,
		`INSERT INTO message (sender_id, receiver_id, subject, message, read, created_at) VALUES ($1, $2, $3, $4, FALSE, $5) RETURNING id`,
		n.SenderID, n.ReceiverID, n.Subject, n.Message, repo.stamp(),
	).Scan(&id)
	if err != nil {
		return college.Message{}, errors.Wrap(err, "creating message")
	}
	return repo.getMessage(ctx, id)
}

func (repo *Repository) MarkMessageRead(ctx context.Context, id int) error {
	_, err := repo.db.ExecContext(ctx, `UPDATE message SET read = TRUE WHERE id = $1`, id)
	return errors.Wrap(err, "marking message read")
}

// helpers

func itoa(n int) string {
	return strconv.Itoa(n)
}

func whereClause(clauses []string) string {
	if len(clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(clauses, " AND ")
}
