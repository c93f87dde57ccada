package echoapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/elimu/core/college"
)

func Test_collegeAPI_lists(t *testing.T) {
	app := newTestServer(t)

	tests := []httpTest{
		{
			name:     "students",
			path:     "/api/students",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, college.FixtureStudents()),
		},
		{
			name:     "courses",
			path:     "/api/courses",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, college.FixtureCourses()),
		},
		{
			name:     "faculty",
			path:     "/api/faculty",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, college.FixtureFaculty()),
		},
		{
			name:     "activities",
			path:     "/api/activities",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, college.FixtureActivities()),
		},
		{
			name:     "attendance filtered by student",
			path:     "/api/attendance?student_id=2",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, []college.Attendance{{ID: 2, StudentID: 2, CourseID: 1, Date: "2024-01-15", Status: college.StatusPresent}}),
		},
		{
			name:     "grades filtered by exam",
			path:     "/api/grades?student_id=1&exam_id=2",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, []college.Grade{{ID: 6, StudentID: 1, ExamID: 2, Marks: 90, Grade: "A+"}}),
		},
		{
			name:     "messages filtered by either side",
			path:     "/api/messages?user_id=3",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, []college.Message{
				{ID: 3, SenderID: 1, ReceiverID: 3, Subject: "Exam Query", Message: "When will the midterm exams be scheduled?", CreatedAt: "2024-02-01T10:00:00Z"},
				{ID: 4, SenderID: 3, ReceiverID: 1, Subject: "Re: Exam Query", Message: "The exams will be scheduled for next month.", Read: true, CreatedAt: "2024-02-01T11:00:00Z"},
			}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodGet, tt.path)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_collegeAPI_createStudent(t *testing.T) {
	app := newTestServer(t)

	req, rec := newRequest(http.MethodPost, "/api/students", []byte(`{"name": "Jane Doe", "email": "jane@student.edu", "course": "Physics", "year": "1st Year"}`))
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created college.Student
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, college.Student{ID: 6, Name: "Jane Doe", Email: "jane@student.edu", Course: "Physics", Year: "1st Year"}, created)

	// validation failures never hit storage
	req, rec = newRequest(http.MethodPost, "/api/students", []byte(`{"email": "nope"}`))
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_collegeAPI_updateStudent(t *testing.T) {
	app := newTestServer(t)

	req, rec := newRequest(http.MethodPut, "/api/students/2", []byte(`{"course": "Physics"}`))
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated college.Student
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Physics", updated.Course)
	assert.Equal(t, "Priya Patel", updated.Name)

	req, rec = newRequest(http.MethodPut, "/api/students/99", []byte(`{"course": "Physics"}`))
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusNotFound,
		wantData: marchallObj(t, httpErr{Error: "not found"}),
	}, rec)
}

func Test_collegeAPI_deleteStudent(t *testing.T) {
	app := newTestServer(t)

	req, rec := newRequest(http.MethodDelete, "/api/students/1")
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: []byte(`{"ok": true}`)}, rec)

	// deletes are idempotent
	req, rec = newRequest(http.MethodDelete, "/api/students/1")
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func Test_collegeAPI_createGradeDerivesLetter(t *testing.T) {
	app := newTestServer(t)

	req, rec := newRequest(http.MethodPost, "/api/grades", []byte(`{"student_id": 1, "exam_id": 3, "marks": 45}`))
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created college.Grade
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "C", created.Grade)
}

func Test_collegeAPI_notifications(t *testing.T) {
	app := newTestServer(t)

	req, rec := newRequest(http.MethodPost, "/api/notifications", []byte(`{"user_id": 1, "title": "Ping", "message": "Hello", "type": "info"}`))
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created college.Notification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 6, created.ID)
	assert.False(t, created.Read)
	assert.NotEmpty(t, created.CreatedAt)

	req, rec = newRequest(http.MethodPut, "/api/notifications/6/read")
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: []byte(`{"ok": true}`)}, rec)

	req, rec = newRequest(http.MethodGet, "/api/notifications?user_id=1&unread=true")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var items []college.Notification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Welcome", items[0].Title)
}

func Test_metricsEndpoint(t *testing.T) {
	app := newTestServer(t)

	// generate some traffic first
	req, rec := newRequest(http.MethodGet, "/api/students")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req, rec = newRequest(http.MethodGet, "/metrics")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}
