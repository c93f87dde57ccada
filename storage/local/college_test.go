package localdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/elimu/core/college"
)

func newTestRepo(t *testing.T) *Repository {
	store, err := Open("")
	require.NoError(t, err)
	return NewRepository(store)
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func Test_Repository_seedsOnFirstTouch(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	items, err := repo.QueryStudents(ctx)
	require.NoError(t, err)
	assert.Equal(t, college.FixtureStudents(), items)

	// seeding happens once; later reads see mutations, not a reseed
	require.NoError(t, repo.DeleteStudent(ctx, 1))
	items, err = repo.QueryStudents(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 4)
}

func Test_Repository_createAssignsNextID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.CreateStudent(ctx, college.NewStudent{Name: "Jane", Email: "jane@student.edu"})
	require.NoError(t, err)
	assert.Equal(t, 6, created.ID)

	// ids are max+1, so a freed id can be reused
	require.NoError(t, repo.DeleteStudent(ctx, 6))
	created, err = repo.CreateStudent(ctx, college.NewStudent{Name: "Joe", Email: "joe@student.edu"})
	require.NoError(t, err)
	assert.Equal(t, 6, created.ID)

	// new records append in insertion order
	items, err := repo.QueryStudents(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Joe", items[len(items)-1].Name)
}

func Test_Repository_updateMergesFields(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	updated, err := repo.UpdateStudent(ctx, 2, college.UpdateStudent{Course: strPtr("Physics")})
	require.NoError(t, err)
	assert.Equal(t, "Physics", updated.Course)
	assert.Equal(t, "Priya Patel", updated.Name)
	assert.Equal(t, "priya@student.edu", updated.Email)

	_, err = repo.UpdateStudent(ctx, 99, college.UpdateStudent{Name: strPtr("Nobody")})
	assert.Equal(t, college.ErrNotFound, err)
}

func Test_Repository_deleteIsIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.DeleteCourse(ctx, 99))
	items, err := repo.QueryCourses(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 6)

	require.NoError(t, repo.DeleteCourse(ctx, 3))
	require.NoError(t, repo.DeleteCourse(ctx, 3))
	items, err = repo.QueryCourses(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 5)
}

func Test_Repository_attendanceFilters(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.CreateAttendance(ctx, college.NewAttendance{StudentID: 1, CourseID: 2, Date: "2024-01-16", Status: college.StatusLate})
	require.NoError(t, err)

	items, err := repo.QueryAttendance(ctx, college.AttendanceFilter{StudentID: 1})
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = repo.QueryAttendance(ctx, college.AttendanceFilter{StudentID: 1, CourseID: 2})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, college.StatusLate, items[0].Status)

	items, err = repo.QueryAttendance(ctx, college.AttendanceFilter{Date: "2024-01-15"})
	require.NoError(t, err)
	assert.Len(t, items, 5)

	// the fallback plane does not resolve display names
	assert.Empty(t, items[0].StudentName)
	assert.Empty(t, items[0].CourseTitle)
}

func Test_Repository_gradeUpdate(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	// shallow merge: marks change alone does not touch the stored letter
	updated, err := repo.UpdateGrade(ctx, 1, college.UpdateGrade{Marks: floatPtr(95)})
	require.NoError(t, err)
	assert.Equal(t, 95.0, updated.Marks)
	assert.Equal(t, "A", updated.Grade)

	updated, err = repo.UpdateGrade(ctx, 1, college.UpdateGrade{Marks: floatPtr(95), Grade: strPtr(college.CalculateGrade(95))})
	require.NoError(t, err)
	assert.Equal(t, "A+", updated.Grade)
}

func Test_Repository_notificationFilters(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	items, err := repo.QueryNotifications(ctx, college.NotificationFilter{UserID: 1})
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = repo.QueryNotifications(ctx, college.NotificationFilter{UserID: 1, Unread: true})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Welcome", items[0].Title)

	require.NoError(t, repo.MarkNotificationRead(ctx, 1))
	items, err = repo.QueryNotifications(ctx, college.NotificationFilter{UserID: 1, Unread: true})
	require.NoError(t, err)
	assert.Empty(t, items)

	// marking a nonexistent id is not an error
	assert.NoError(t, repo.MarkNotificationRead(ctx, 99))
}

func Test_Repository_messageFilterMatchesEitherSide(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	items, err := repo.QueryMessages(ctx, college.MessageFilter{UserID: 3})
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, m := range items {
		assert.True(t, m.SenderID == 3 || m.ReceiverID == 3)
	}
}

func Test_Repository_createStampsCreatedAt(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	oldNow := nowFunc
	nowFunc = func() time.Time { return now }
	defer func() { nowFunc = oldNow }()

	created, err := repo.CreateMessage(ctx, college.NewMessage{SenderID: 1, ReceiverID: 2, Subject: "Hi", Message: "Hello"})
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01T12:00:00Z", created.CreatedAt)
	assert.False(t, created.Read)
}

func Test_Store_persistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := Open(dir)
	require.NoError(t, err)
	repo := NewRepository(store)

	created, err := repo.CreateStudent(ctx, college.NewStudent{Name: "Jane", Email: "jane@student.edu"})
	require.NoError(t, err)

	reopened, err := Open(dir)
	require.NoError(t, err)
	items, err := NewRepository(reopened).QueryStudents(ctx)
	require.NoError(t, err)
	require.Len(t, items, 6)
	assert.Equal(t, created, items[5])
}
