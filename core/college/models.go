package college

// Attendance statuses
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
)

// Notification types
const (
	TypeInfo    = "info"
	TypeSuccess = "success"
	TypeWarning = "warning"
	TypeError   = "error"
)

type Student struct {
	ID     int    `json:"id" db:"id"`
	Name   string `json:"name" db:"name"`
	Email  string `json:"email" db:"email"`
	Course string `json:"course" db:"course"`
	Year   string `json:"year" db:"year"`
}

type Course struct {
	ID      int    `json:"id" db:"id"`
	Title   string `json:"title" db:"title"`
	Code    string `json:"code" db:"code"`
	Credits int    `json:"credits" db:"credits"`
}

type Faculty struct {
	ID         int    `json:"id" db:"id"`
	Name       string `json:"name" db:"name"`
	Department string `json:"department" db:"department"`
	Email      string `json:"email" db:"email"`
}

// Activity is a read-only entry of the recent-activity feed.
type Activity struct {
	ID       int    `json:"id" db:"id"`
	Activity string `json:"activity" db:"activity"`
	Time     string `json:"time" db:"time"`
}

type Attendance struct {
	ID        int    `json:"id" db:"id"`
	StudentID int    `json:"student_id" db:"student_id"`
	CourseID  int    `json:"course_id" db:"course_id"`
	Date      string `json:"date" db:"date"` // ISO date
	Status    string `json:"status" db:"status"`

	// joined display names; empty on a dangling reference
	StudentName string `json:"student_name,omitempty" db:"student_name"`
	CourseTitle string `json:"course_title,omitempty" db:"course_title"`
}

type Assignment struct {
	ID          int    `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	CourseID    int    `json:"course_id" db:"course_id"`
	DueDate     string `json:"due_date" db:"due_date"` // ISO date
	CreatedBy   int    `json:"created_by" db:"created_by"`

	CourseTitle string `json:"course_title,omitempty" db:"course_title"`
	CreatorName string `json:"creator_name,omitempty" db:"creator_name"`
}

type Exam struct {
	ID         int    `json:"id" db:"id"`
	Title      string `json:"title" db:"title"`
	CourseID   int    `json:"course_id" db:"course_id"`
	Date       string `json:"date" db:"date"` // ISO date
	Duration   int    `json:"duration" db:"duration"` // minutes
	TotalMarks int    `json:"total_marks" db:"total_marks"`

	CourseTitle string `json:"course_title,omitempty" db:"course_title"`
}

type Grade struct {
	ID        int     `json:"id" db:"id"`
	StudentID int     `json:"student_id" db:"student_id"`
	ExamID    int     `json:"exam_id" db:"exam_id"`
	Marks     float64 `json:"marks" db:"marks"`
	Grade     string  `json:"grade" db:"grade"` // letter, derived from marks

	StudentName string `json:"student_name,omitempty" db:"student_name"`
	ExamTitle   string `json:"exam_title,omitempty" db:"exam_title"`
}

type Notification struct {
	ID        int    `json:"id" db:"id"`
	UserID    int    `json:"user_id" db:"user_id"`
	Title     string `json:"title" db:"title"`
	Message   string `json:"message" db:"message"`
	Type      string `json:"type" db:"type"`
	Read      bool   `json:"read" db:"read"`
	CreatedAt string `json:"created_at" db:"created_at"` // ISO timestamp, writer-assigned
}

type Message struct {
	ID         int    `json:"id" db:"id"`
	SenderID   int    `json:"sender_id" db:"sender_id"`
	ReceiverID int    `json:"receiver_id" db:"receiver_id"`
	Subject    string `json:"subject" db:"subject"`
	Message    string `json:"message" db:"message"`
	Read       bool   `json:"read" db:"read"`
	CreatedAt  string `json:"created_at" db:"created_at"`

	SenderName   string `json:"sender_name,omitempty" db:"sender_name"`
	ReceiverName string `json:"receiver_name,omitempty" db:"receiver_name"`
}

// CalculateGrade derives the letter grade from marks. Band lower bounds are
// inclusive: 90/80/70/60/50/40.
func CalculateGrade(marks float64) string {
	switch {
	case marks >= 90:
		return "A+"
	case marks >= 80:
		return "A"
	case marks >= 70:
		return "B+"
	case marks >= 60:
		return "B"
	case marks >= 50:
		return "C+"
	case marks >= 40:
		return "C"
	default:
		return "F"
	}
}
