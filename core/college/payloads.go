package college

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/elimu/core"
)

// Create payloads. The backing store assigns the id.

type NewStudent struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Course string `json:"course"`
	Year   string `json:"year"`
}

func (n *NewStudent) Validate(validate *validator.Validate) error {
	n.Name = core.CleanString(n.Name)
	n.Email = core.CleanString(n.Email, true /* lower */)
	return validate.Struct(n)
}

type NewCourse struct {
	Title   string `json:"title" validate:"required"`
	Code    string `json:"code" validate:"required"`
	Credits int    `json:"credits"`
}

func (n *NewCourse) Validate(validate *validator.Validate) error {
	n.Title = core.CleanString(n.Title)
	n.Code = core.CleanString(n.Code)
	return validate.Struct(n)
}

type NewFaculty struct {
	Name       string `json:"name" validate:"required"`
	Department string `json:"department"`
	Email      string `json:"email" validate:"required,email"`
}

func (n *NewFaculty) Validate(validate *validator.Validate) error {
	n.Name = core.CleanString(n.Name)
	n.Email = core.CleanString(n.Email, true /* lower */)
	return validate.Struct(n)
}

type NewAttendance struct {
	StudentID int    `json:"student_id" validate:"required"`
	CourseID  int    `json:"course_id" validate:"required"`
	Date      string `json:"date" validate:"required"`
	Status    string `json:"status" validate:"required,oneof=present absent late"`
}

func (n *NewAttendance) Validate(validate *validator.Validate) error { return validate.Struct(n) }

type NewAssignment struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	CourseID    int    `json:"course_id" validate:"required"`
	DueDate     string `json:"due_date" validate:"required"`
	CreatedBy   int    `json:"created_by"`
}

func (n *NewAssignment) Validate(validate *validator.Validate) error {
	n.Title = core.CleanString(n.Title)
	return validate.Struct(n)
}

type NewExam struct {
	Title      string `json:"title" validate:"required"`
	CourseID   int    `json:"course_id" validate:"required"`
	Date       string `json:"date" validate:"required"`
	Duration   int    `json:"duration"`
	TotalMarks int    `json:"total_marks"`
}

func (n *NewExam) Validate(validate *validator.Validate) error {
	n.Title = core.CleanString(n.Title)
	return validate.Struct(n)
}

type NewGrade struct {
	StudentID int     `json:"student_id" validate:"required"`
	ExamID    int     `json:"exam_id" validate:"required"`
	Marks     float64 `json:"marks"`
	// Grade is derived from Marks when left empty.
	Grade string `json:"grade"`
}

func (n *NewGrade) Validate(validate *validator.Validate) error {
	if n.Grade == "" {
		n.Grade = CalculateGrade(n.Marks)
	}
	return validate.Struct(n)
}

type NewNotification struct {
	UserID  int    `json:"user_id" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Message string `json:"message" validate:"required"`
	Type    string `json:"type" validate:"required,oneof=info success warning error"`
}

func (n *NewNotification) Validate(validate *validator.Validate) error {
	n.Title = core.CleanString(n.Title)
	return validate.Struct(n)
}

type NewMessage struct {
	SenderID   int    `json:"sender_id" validate:"required"`
	ReceiverID int    `json:"receiver_id" validate:"required"`
	Subject    string `json:"subject" validate:"required"`
	Message    string `json:"message" validate:"required"`
}

func (n *NewMessage) Validate(validate *validator.Validate) error {
	n.Subject = core.CleanString(n.Subject)
	return validate.Struct(n)
}

// Update payloads: nil fields are preserved on the existing record.

type UpdateStudent struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Course *string `json:"course,omitempty"`
	Year   *string `json:"year,omitempty"`
}

type UpdateAttendance struct {
	StudentID *int    `json:"student_id,omitempty"`
	CourseID  *int    `json:"course_id,omitempty"`
	Date      *string `json:"date,omitempty"`
	Status    *string `json:"status,omitempty"`
}

type UpdateGrade struct {
	StudentID *int     `json:"student_id,omitempty"`
	ExamID    *int     `json:"exam_id,omitempty"`
	Marks     *float64 `json:"marks,omitempty"`
	Grade     *string  `json:"grade,omitempty"`
}

// Equality filters for list operations; zero values mean "not set".

type AttendanceFilter struct {
	StudentID int    `query:"student_id"`
	CourseID  int    `query:"course_id"`
	Date      string `query:"date"`
}

func (f AttendanceFilter) IsEmpty() bool {
	return f.StudentID == 0 && f.CourseID == 0 && f.Date == ""
}

type AssignmentFilter struct {
	CourseID int `query:"course_id"`
}

type ExamFilter struct {
	CourseID int `query:"course_id"`
}

type GradeFilter struct {
	StudentID int `query:"student_id"`
	ExamID    int `query:"exam_id"`
}

type NotificationFilter struct {
	UserID int  `query:"user_id"`
	Unread bool `query:"unread"`
}

type MessageFilter struct {
	// UserID matches sender or receiver.
	UserID int `query:"user_id"`
}
