package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"

	"github.com/trezcool/elimu/core"
	"github.com/trezcool/elimu/core/college"
	"github.com/trezcool/elimu/core/user"
)

// restBackend is the remote plane: college.Repository and user.Repository over
// the HTTP JSON API.
type restBackend struct {
	base string
	hc   *http.Client
}

var _ college.Repository = (*restBackend)(nil)
var _ user.Repository = (*restBackend)(nil)

func newRESTBackend(conf core.ClientConfig) *restBackend {
	return &restBackend{
		base: conf.APIBaseURL,
		hc:   &http.Client{Timeout: conf.Timeout},
	}
}

// apiError is a non-2xx response. Transport errors keep their original type.
type apiError struct {
	Status int
	Body   string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Body)
}

func (c *restBackend) do(ctx context.Context, method, path string, query url.Values, body, dst interface{}) error {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encoding request body")
		}
		rd = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return errors.Wrap(err, "building request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return errors.Wrap(err, "calling api")
	}
	defer func() { _ = res.Body.Close() }()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.Wrap(err, "reading response")
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &apiError{Status: res.StatusCode, Body: string(raw)}
	}
	if dst != nil {
		if err := json.Unmarshal(raw, dst); err != nil {
			return errors.Wrap(err, "decoding response")
		}
	}
	return nil
}

// getList fetches a collection, tolerating both the bare-array shape and the
// `{data, total}` wrapper some endpoints historically used.
func (c *restBackend) getList(ctx context.Context, path string, query url.Values, dst interface{}) error {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, query, nil, &raw); err != nil {
		return err
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return errors.Wrap(json.Unmarshal(trimmed, dst), "decoding list")
	}
	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return errors.Wrap(err, "decoding list wrapper")
	}
	if wrapper.Data == nil {
		return errors.New("unexpected list response shape")
	}
	return errors.Wrap(json.Unmarshal(wrapper.Data, dst), "decoding wrapped list")
}

// Login posts credentials; a 401 means the credentials were rejected, anything
// else is a plane failure.
func (c *restBackend) Login(ctx context.Context, email, pwd string) (user.Identity, error) {
	var ident user.Identity
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, user.Credentials{Email: email, Password: pwd}, &ident)
	if err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			return user.Identity{}, user.ErrInvalidCredentials
		}
		return user.Identity{}, err
	}
	return ident, nil
}

// Users

func (c *restBackend) QueryAllUsers(ctx context.Context) ([]user.User, error) {
	users := make([]user.User, 0)
	if err := c.getList(ctx, "/api/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *restBackend) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	var created user.User
	if err := c.do(ctx, http.MethodPost, "/api/users", nil, usr, &created); err != nil {
		return user.User{}, err
	}
	return created, nil
}

func (c *restBackend) DeleteUser(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/api/users/"+strconv.Itoa(id), nil, nil, nil)
}

// Students

func (c *restBackend) QueryStudents(ctx context.Context) ([]college.Student, error) {
	items := make([]college.Student, 0)
	if err := c.getList(ctx, "/api/students", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *restBackend) CreateStudent(ctx context.Context, n college.NewStudent) (college.Student, error) {
	var created college.Student
	if err := c.do(ctx, http.MethodPost, "/api/students", nil, n, &created); err != nil {
		return college.Student{}, err
	}
	return created, nil
}

func (c *restBackend) UpdateStudent(ctx context.Context, id int, up college.UpdateStudent) (college.Student, error) {
	var updated college.Student
	if err := c.do(ctx, http.MethodPut, "/api/students/"+strconv.Itoa(id), nil, up, &updated); err != nil {
		return college.Student{}, err
	}
	return updated, nil
}

func (c *restBackend) DeleteStudent(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/api/students/"+strconv.Itoa(id), nil, nil, nil)
}

// Courses

func (c *restBackend) QueryCourses(ctx context.Context) ([]college.Course, error) {
	items := make([]college.Course, 0)
	if err := c.getList(ctx, "/api/courses", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *restBackend) CreateCourse(ctx context.Context, n college.NewCourse) (college.Course, error) {
	var created college.Course
	if err := c.do(ctx, http.MethodPost, "/api/courses", nil, n, &created); err != nil {
		return college.Course{}, err
	}
	return created, nil
}

func (c *restBackend) DeleteCourse(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/api/courses/"+strconv.Itoa(id), nil, nil, nil)
}

// Faculty

func (c *restBackend) QueryFaculty(ctx context.Context) ([]college.Faculty, error) {
	items := make([]college.Faculty, 0)
	if err := c.getList(ctx, "/api/faculty", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *restBackend) CreateFaculty(ctx context.Context, n college.NewFaculty) (college.Faculty, error) {
	var created college.Faculty
	if err := c.do(ctx, http.MethodPost, "/api/faculty", nil, n, &created); err != nil {
		return college.Faculty{}, err
	}
	return created, nil
}

func (c *restBackend) DeleteFaculty(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/api/faculty/"+strconv.Itoa(id), nil, nil, nil)
}

// Activities

func (c *restBackend) QueryActivities(ctx context.Context) ([]college.Activity, error) {
	items := make([]college.Activity, 0)
	if err := c.getList(ctx, "/api/activities", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Attendance

func (c *restBackend) QueryAttendance(ctx context.Context, f college.AttendanceFilter) ([]college.Attendance, error) {
	q := make(url.Values)
	if f.StudentID != 0 {
		q.Set("student_id", strconv.Itoa(f.StudentID))
	}
	if f.CourseID != 0 {
		q.Set("course_id", strconv.Itoa(f.CourseID))
	}
	if f.Date != "" {
		q.Set("date", f.Date)
	}
	items := make([]college.Attendance, 0)
	if err := c.getList(ctx, "/api/attendance", q, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *restBackend) CreateAttendance(ctx context.Context, n college.NewAttendance) (college.Attendance, error) {
	var created college.Attendance
	if err := c.do(ctx, http.MethodPost, "/api/attendance", nil, n, &created); err != nil {
		return college.Attendance{}, err
	}
	return created, nil
}

func (c *restBackend) UpdateAttendance(ctx context.Context, id int, up college.UpdateAttendance) (college.Attendance, error) {
	var updated college.Attendance
	if err := c.do(ctx, http.MethodPut, "/api/attendance/"+strconv.Itoa(id), nil, up, &updated); err != nil {
		return college.Attendance{}, err
	}
	return updated, nil
}

// Assignments

func (c *restBackend) QueryAssignments(ctx context.Context, f college.AssignmentFilter) ([]college.Assignment, error) {
	q := make(url.Values)
	if f.CourseID != 0 {
		q.Set("course_id", strconv.Itoa(f.CourseID))
	}
	items := make([]college.Assignment, 0)
	if err := c.getList(ctx, "/api/assignments", q, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *restBackend) CreateAssignment(ctx context.Context, n college.NewAssignment) (college.Assignment, error) {
	var created college.Assignment
	if err := c.do(ctx, http.MethodPost, "/api/assignments", nil, n, &created); err != nil {
		return college.Assignment{}, err
	}
	return created, nil
}

func (c *restBackend) DeleteAssignment(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/api/assignments/"+strconv.Itoa(id), nil, nil, nil)
}

// Exams

func (c *restBackend) QueryExams(ctx context.Context, f college.ExamFilter) ([]college.Exam, error) {
	q := make(url.Values)
	if f.CourseID != 0 {
		q.Set("course_id", strconv.Itoa(f.CourseID))
	}
	items := make([]college.Exam, 0)
	if err := c.getList(ctx, "/api/exams", q, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *restBackend) CreateExam(ctx context.Context, n college.NewExam) (college.Exam, error) {
	var created college.Exam
	if err := c.do(ctx, http.MethodPost, "/api/exams", nil, n, &created); err != nil {
		return college.Exam{}, err
	}
	return created, nil
}

func (c *restBackend) DeleteExam(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/api/exams/"+strconv.Itoa(id), nil, nil, nil)
}

// Grades

func (c *restBackend) QueryGrades(ctx context.Context, f college.GradeFilter) ([]college.Grade, error) {
	q := make(url.Values)
	if f.StudentID != 0 {
		q.Set("student_id", strconv.Itoa(f.StudentID))
	}
	if f.ExamID != 0 {
		q.Set("exam_id", strconv.Itoa(f.ExamID))
	}
	items := make([]college.Grade, 0)
	if err := c.getList(ctx, "/api/grades", q, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *restBackend) CreateGrade(ctx context.Context, n college.NewGrade) (college.Grade, error) {
	var created college.Grade
	if err := c.do(ctx, http.MethodPost, "/api/grades", nil, n, &created); err != nil {
		return college.Grade{}, err
	}
	return created, nil
}

func (c *restBackend) UpdateGrade(ctx context.Context, id int, up college.UpdateGrade) (college.Grade, error) {
	var updated college.Grade
	if err := c.do(ctx, http.MethodPut, "/api/grades/"+strconv.Itoa(id), nil, up, &updated); err != nil {
		return college.Grade{}, err
	}
	return updated, nil
}

// Notifications

func (c *restBackend) QueryNotifications(ctx context.Context, f college.NotificationFilter) ([]college.Notification, error) {
	q := make(url.Values)
	if f.UserID != 0 {
		q.Set("user_id", strconv.Itoa(f.UserID))
	}
	if f.Unread {
		q.Set("unread", "true")
	}
	items := make([]college.Notification, 0)
	if err := c.getList(ctx, "/api/notifications", q, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *restBackend) CreateNotification(ctx context.Context, n college.NewNotification) (college.Notification, error) {
	var created college.Notification
	if err := c.do(ctx, http.MethodPost, "/api/notifications", nil, n, &created); err != nil {
		return college.Notification{}, err
	}
	return created, nil
}

func (c *restBackend) MarkNotificationRead(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPut, "/api/notifications/"+strconv.Itoa(id)+"/read", nil, nil, nil)
}

// Messages

func (c *restBackend) QueryMessages(ctx context.Context, f college.MessageFilter) ([]college.Message, error) {
	q := make(url.Values)
	if f.UserID != 0 {
		q.Set("user_id", strconv.Itoa(f.UserID))
	}
	items := make([]college.Message, 0)
	if err := c.getList(ctx, "/api/messages", q, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *restBackend) CreateMessage(ctx context.Context, n college.NewMessage) (college.Message, error) {
	var created college.Message
	if err := c.do(ctx, http.MethodPost, "/api/messages", nil, n, &created); err != nil {
		return college.Message{}, err
	}
	return created, nil
}

func (c *restBackend) MarkMessageRead(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPut, "/api/messages/"+strconv.Itoa(id)+"/read", nil, nil, nil)
}
