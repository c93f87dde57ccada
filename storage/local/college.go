package localdb

import (
	"context"
	"time"

	"github.com/trezcool/elimu/core/college"
)

// Repository implements college.Repository on the durable local store.
// Semantics follow the fallback plane: new ids are max-existing + 1, updates
// are shallow merges, deletes are idempotent, lists keep insertion order and
// do not resolve display names.
type Repository struct {
	store *Store
}

func NewRepository(store *Store) *Repository {
	return &Repository{store: store}
}

// nowFunc is the fallback-plane clock for created_at stamps. Mockable.
var nowFunc = time.Now

func stamp() string {
	return nowFunc().UTC().Format(time.RFC3339)
}

// Students

func (repo *Repository) QueryStudents(_ context.Context) ([]college.Student, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	items := make([]college.Student, 0)
	if err := repo.store.ensure(keyStudents, college.FixtureStudents(), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (repo *Repository) CreateStudent(_ context.Context, n college.NewStudent) (college.Student, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	items := make([]college.Student, 0)
	if err := repo.store.ensure(keyStudents, college.FixtureStudents(), &items); err != nil {
		return college.Student{}, err
	}
	item := college.Student{
		ID:     nextStudentID(items),
		Name:   n.Name,
		Email:  n.Email,
		Course: n.Course,
		Year:   n.Year,
	}
	items = append(items, item)
	if err := repo.store.put(keyStudents, items); err != nil {
		return college.Student{}, err
	}
	return item, nil
}

func (repo *Repository) UpdateStudent(_ context.Context, id int, up college.UpdateStudent) (college.Student, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	items := make([]college.Student, 0)
	if err := repo.store.ensure(keyStudents, college.FixtureStudents(), &items); err != nil {
		return college.Student{}, err
	}
	for i, item := range items {
		if item.ID != id {
			continue
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
		items[i] = item
		if err := repo.store.put(keyStudents, items); err != nil {
			return college.Student{}, err
		}
		return item, nil
	}
	return college.Student{}, college.ErrNotFound
}

func (repo *Repository) DeleteStudent(_ context.Context, id int) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	items := make([]college.Student, 0)
	if err := repo.store.ensure(keyStudents, college.FixtureStudents(), &items); err != nil {
		return err
	}
	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return repo.store.put(keyStudents, kept)
}

func nextStudentID(items []college.Student) int {
	max := 0
	for _, item := range items {
		if item.ID > max {
			max = item.ID
		}
	}
	return max + 1
}

// Courses

func (repo *Repository) QueryCourses(_ context.Context) ([]college.Course, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	items := make([]college.Course, 0)
	if err := repo.store.ensure(keyCourses, college.FixtureCourses(), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (repo *Repository) CreateCourse(_ context.Context, n college.NewCourse) (college.Course, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	items := make([]college.Course, 0)
	if err := repo.store.ensure(keyCourses, college.FixtureCourses(), &items); err != nil {
		return college.Course{}, err
	}
	max := 0
	for _, item := range items {
		if item.ID > max {
			max = item.ID
		}
	}
	item := college.Course{ID: max + 1, Title: n.Title, Code: n.Code, Credits: n.Credits}
	items = append(items, item)
	if err := repo.store.put(keyCourses, items); err != nil {
		return college.Course{}, err
	}
	return item, nil
}

func (repo *Repository) DeleteCourse(_ context.Context, id int) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	items := make([]college.Course, 0)
	if err := repo.store.ensure(keyCourses, college.FixtureCourses(), &items); err != nil {
		return err
	}
	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return repo.store.put(keyCourses, kept)
}

// Faculty

func (repo *Repository) QueryFaculty(_ context.Context) ([]college.Faculty, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	items := make([]college.Faculty, 0)
	if err := repo.store.ensure(keyFaculty, college.FixtureFaculty(), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (repo *Repository) CreateFaculty(_ context.Context, n college.NewFaculty) (college.Faculty, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	items := make([]college.Faculty, 0)
	if err := repo.store.ensure(keyFaculty, college.FixtureFaculty(), &items); err != nil {
		return college.Faculty{}, err
	}
	max := 0
	for _, item := range items {
		if item.ID > max {
			max = item.ID
		}
	}
	item := college.Faculty{ID: max + 1, Name: n.Name, Department: n.Department, Email: n.Email}
	items = append(items, item)
	if err := repo.store.put(keyFaculty, items); err != nil {
		return college.Faculty{}, err
	}
	return item, nil
}

func (repo *Repository) DeleteFaculty(_ context.Context, id int) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	items := make([]college.Faculty, 0)
	if err := repo.store.ensure(keyFaculty, college.FixtureFaculty(), &items); err != nil {
		return err
	}
	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return repo.store.put(keyFaculty, kept)
}

// Activities

func (repo *Repository) QueryActivities(_ context.Context) ([]college.Activity, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	items := make([]college.Activity, 0)
	if err := repo.store.ensure(keyActivities, college.FixtureActivities(), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Attendance

func (repo *Repository) QueryAttendance(_ context.Context, f college.AttendanceFilter) ([]college.Attendance, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	items := make([]college.Attendance, 0)
	if err := repo.store.ensure(keyAttendance, college.FixtureAttendance(), &items); err != nil {
		return nil, err
	}
	if f.IsEmpty() {
		return items, nil
	}
	matched := make([]college.Attendance, 0, len(items))
	for _, item := range items {
		if f.StudentID != 0 && item.StudentID != f.StudentID {
			continue
		}
		if f.CourseID != 0 && item.CourseID != f.CourseID {
			continue
		}
		if f.Date != "" && item.Date != f.Date {
			continue
		}
		matched = append(matched, item)
	}
	return matched, nil
}

func (repo *Repository) CreateAttendance(_ context.Context, n college.NewAttendance) (college.Attendance, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	items := make([]college.Attendance, 0)
	if err := repo.store.ensure(keyAttendance, college.FixtureAttendance(), &items); err != nil {
		return college.Attendance{}, err
	}
	max := 0
	for _, item := range items {
		if item.ID > max {
			max = item.ID
		}
	}
	item := college.Attendance{
		ID:        max + 1,
		StudentID: n.StudentID,
		CourseID:  n.CourseID,
		Date:      n.Date,
		Status:    n.Status,
	}
	items = append(items, item)
	if err := repo.store.put(keyAttendance, items); err != nil {
		return college.Attendance{}, err
	}
	return item, nil
}

func (repo *Repository) UpdateAttendance(_ context.Context, id int, up college.UpdateAttendance) (college.Attendance, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	items := make([]college.Attendance, 0)
	if err := repo.store.ensure(keyAttendance, college.FixtureAttendance(), &items); err != nil {
		return college.Attendance{}, err
	}
	for i, item := range items {
		if item.ID != id {
			continue
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
		items[i] = item
		if err := repo.store.put(keyAttendance, items); err != nil {
			return college.Attendance{}, err
		}
		return item, nil
	}
	return college.Attendance{}, college.ErrNotFound
}

// Assignments

func (repo *Repository) QueryAssignments(_ context.Context, f college.AssignmentFilter) ([]college.Assignment, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	items := make([]college.Assignment, 0)
	if err := repo.store.ensure(keyAssignments, college.FixtureAssignments(), &items); err != nil {
		return nil, err
	}
	if f.CourseID == 0 {
		return items, nil
	}
	matched := make([]college.Assignment, 0, len(items))
	for _, item := range items {
		if item.CourseID == f.CourseID {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

func (repo *Repository) CreateAssignment(_ context.Context, n college.NewAssignment) (college.Assignment, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	items := make([]college.Assignment, 0)
	if err := repo.store.ensure(keyAssignments, college.FixtureAssignments(), &items); err != nil {
		return college.Assignment{}, err
	}
	max := 0
	for _, item := range items {
		if item.ID > max {
			max = item.ID
		}
	}
	item := college.Assignment{
		ID:          max + 1,
		Title:       n.Title,
		Description: n.Description,
		CourseID:    n.CourseID,
		DueDate:     n.DueDate,
		CreatedBy:   n.CreatedBy,
	}
	items = append(items, item)
	if err := repo.store.put(keyAssignments, items); err != nil {
		return college.Assignment{}, err
	}
	return item, nil
}

func (repo *Repository) DeleteAssignment(_ context.Context, id int) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	items := make([]college.Assignment, 0)
	if err := repo.store.ensure(keyAssignments, college.FixtureAssignments(), &items); err != nil {
		return err
	}
	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return repo.store.put(keyAssignments, kept)
}

// Exams

func (repo *Repository) QueryExams(_ context.Context, f college.ExamFilter) ([]college.Exam, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	items := make([]college.Exam, 0)
	if err := repo.store.ensure(keyExams, college.FixtureExams(), &items); err != nil {
		return nil, err
	}
	if f.CourseID == 0 {
		return items, nil
	}
	matched := make([]college.Exam, 0, len(items))
	for _, item := range items {
		if item.CourseID == f.CourseID {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

func (repo *Repository) CreateExam(_ context.Context, n college.NewExam) (college.Exam, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	items := make([]college.Exam, 0)
	if err := repo.store.ensure(keyExams, college.FixtureExams(), &items); err != nil {
		return college.Exam{}, err
	}
	max := 0
	for _, item := range items {
		if item.ID > max {
			max = item.ID
		}
	}
	item := college.Exam{
		ID:         max + 1,
		Title:      n.Title,
		CourseID:   n.CourseID,
		Date:       n.Date,
		Duration:   n.Duration,
		TotalMarks: n.TotalMarks,
	}
	items = append(items, item)
	if err := repo.store.put(keyExams, items); err != nil {
		return college.Exam{}, err
	}
	return item, nil
}

func (repo *Repository) DeleteExam(_ context.Context, id int) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	items := make([]college.Exam, 0)
	if err := repo.store.ensure(keyExams, college.FixtureExams(), &items); err != nil {
		return err
	}
	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return repo.store.put(keyExams, kept)
}

// Grades

func (repo *Repository) QueryGrades(_ context.Context, f college.GradeFilter) ([]college.Grade, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	items := make([]college.Grade, 0)
	if err := repo.store.ensure(keyGrades, college.FixtureGrades(), &items); err != nil {
		return nil, err
	}
	if f.StudentID == 0 && f.ExamID == 0 {
		return items, nil
	}
	matched := make([]college.Grade, 0, len(items))
	for _, item := range items {
		if f.StudentID != 0 && item.StudentID != f.StudentID {
			continue
		}
		if f.ExamID != 0 && item.ExamID != f.ExamID {
			continue
		}
		matched = append(matched, item)
	}
	return matched, nil
}

func (repo *Repository) CreateGrade(_ context.Context, n college.NewGrade) (college.Grade, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	items := make([]college.Grade, 0)
	if err := repo.store.ensure(keyGrades, college.FixtureGrades(), &items); err != nil {
		return college.Grade{}, err
	}
	if n.Grade == "" {
		n.Grade = college.CalculateGrade(n.Marks)
	}
	max := 0
	for _, item := range items {
		if item.ID > max {
			max = item.ID
		}
	}
	item := college.Grade{
		ID:        max + 1,
		StudentID: n.StudentID,
		ExamID:    n.ExamID,
		Marks:     n.Marks,
		Grade:     n.Grade,
	}
	items = append(items, item)
	if err := repo.store.put(keyGrades, items); err != nil {
		return college.Grade{}, err
	}
	return item, nil
}

func (repo *Repository) UpdateGrade(_ context.Context, id int, up college.UpdateGrade) (college.Grade, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	items := make([]college.Grade, 0)
	if err := repo.store.ensure(keyGrades, college.FixtureGrades(), &items); err != nil {
		return college.Grade{}, err
	}
	for i, item := range items {
		if item.ID != id {
			continue
		}
		if up.StudentID != nil {
			item.StudentID = *up.StudentID
		}
		if up.ExamID != nil {
			item.ExamID = *up.ExamID
		}
		if up.Marks != nil {
			item.Marks = *up.Marks
		}
		if up.Grade != nil {
			item.Grade = *up.Grade
		}
		items[i] = item
		if err := repo.store.put(keyGrades, items); err != nil {
			return college.Grade{}, err
		}
		return item, nil
	}
	return college.Grade{}, college.ErrNotFound
}

// Notifications

func (repo *Repository) QueryNotifications(_ context.Context, f college.NotificationFilter) ([]college.Notification, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	items := make([]college.Notification, 0)
	if err := repo.store.ensure(keyNotifications, college.FixtureNotifications(), &items); err != nil {
		return nil, err
	}
	if f.UserID == 0 && !f.Unread {
		return items, nil
	}
	matched := make([]college.Notification, 0, len(items))
	for _, item := range items {
		if f.UserID != 0 && item.UserID != f.UserID {
			continue
		}
		if f.Unread && item.Read {
			continue
		}
		matched = append(matched, item)
	}
	return matched, nil
}

func (repo *Repository) CreateNotification(_ context.Context, n college.NewNotification) (college.Notification, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	items := make([]college.Notification, 0)
	if err := repo.store.ensure(keyNotifications, college.FixtureNotifications(), &items); err != nil {
		return college.Notification{}, err
	}
	max := 0
	for _, item := range items {
		if item.ID > max {
			max = item.ID
		}
	}
	item := college.Notification{
		ID:        max + 1,
		UserID:    n.UserID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		CreatedAt: stamp(),
	}
	items = append(items, item)
	if err := repo.store.put(keyNotifications, items); err != nil {
		return college.Notification{}, err
	}
	return item, nil
}

func (repo *Repository) MarkNotificationRead(_ context.Context, id int) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	items := make([]college.Notification, 0)
	if err := repo.store.ensure(keyNotifications, college.FixtureNotifications(), &items); err != nil {
		return err
	}
	for i, item := range items {
		if item.ID == id {
			items[i].Read = true
			return repo.store.put(keyNotifications, items)
		}
	}
	return nil // marking a nonexistent id is not an error
}

// Messages

func (repo *Repository) QueryMessages(_ context.Context, f college.MessageFilter) ([]college.Message, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	items := make([]college.Message, 0)
	if err := repo.store.ensure(keyMessages, college.FixtureMessages(), &items); err != nil {
		return nil, err
	}
	if f.UserID == 0 {
		return items, nil
	}
	matched := make([]college.Message, 0, len(items))
	for _, item := range items {
		if item.SenderID == f.UserID || item.ReceiverID == f.UserID {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

func (repo *Repository) CreateMessage(_ context.Context, n college.NewMessage) (college.Message, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	items := make([]college.Message, 0)
	if err := repo.store.ensure(keyMessages, college.FixtureMessages(), &items); err != nil {
		return college.Message{}, err
	}
	max := 0
	for _, item := range items {
		if item.ID > max {
			max = item.ID
		}
	}
	item := college.Message{
		ID:         max + 1,
		SenderID:   n.SenderID,
		ReceiverID: n.ReceiverID,
		Subject:    n.Subject,
		Message:    n.Message,
		CreatedAt:  stamp(),
	}
	items = append(items, item)
	if err := repo.store.put(keyMessages, items); err != nil {
		return college.Message{}, err
	}
	return item, nil
}

func (repo *Repository) MarkMessageRead(_ context.Context, id int) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	items := make([]college.Message, 0)
	if err := repo.store.ensure(keyMessages, college.FixtureMessages(), &items); err != nil {
		return err
	}
	for i, item := range items {
		if item.ID == id {
			items[i].Read = true
			return repo.store.put(keyMessages, items)
		}
	}
	return nil
}
