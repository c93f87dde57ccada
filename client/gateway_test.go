package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/elimu/core"
	"github.com/trezcool/elimu/core/college"
	localdb "github.com/trezcool/elimu/storage/local"
)

type testLogger struct{}

func (testLogger) Debug(string, ...interface{})   {}
func (testLogger) Info(string, ...interface{})    {}
func (testLogger) Warning(string, ...interface{}) {}
func (testLogger) Error(string, ...interface{})   {}
func (testLogger) Fatal(string, ...interface{})   {}

func testConf(baseURL string) *core.Config {
	return &core.Config{
		SecretKey: "secret",
		Client: core.ClientConfig{
			APIBaseURL: baseURL,
			Timeout:    2 * time.Second,
		},
	}
}

func newTestGateway(t *testing.T, baseURL string) (*Gateway, *localdb.Store) {
	store, err := localdb.Open("")
	require.NoError(t, err)
	return NewGateway(testConf(baseURL), store, testLogger{}), store
}

func Test_Gateway_remoteFirst(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/students":
			// wrapped list shape
			_, _ = w.Write([]byte(`{"data": [{"id": 42, "name": "Remote Student", "email": "r@s.edu", "course": "", "year": ""}], "total": 1}`))
		case "/api/courses":
			// bare list shape
			_, _ = w.Write([]byte(`[{"id": 7, "title": "Remote Course", "code": "RC1", "credits": 2}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	gw, _ := newTestGateway(t, ts.URL)
	ctx := context.Background()

	students, err := gw.QueryStudents(ctx)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, 42, students[0].ID)

	courses, err := gw.QueryCourses(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Remote Course", courses[0].Title)
}

func Test_Gateway_fallsBackWhenRemoteDown(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	ts.Close() // dead remote

	gw, _ := newTestGateway(t, ts.URL)
	ctx := context.Background()

	students, err := gw.QueryStudents(ctx)
	require.NoError(t, err)
	assert.Equal(t, college.FixtureStudents(), students)

	created, err := gw.CreateStudent(ctx, college.NewStudent{Name: "Jane", Email: "jane@student.edu"})
	require.NoError(t, err)
	assert.Equal(t, 6, created.ID)

	// writes that landed on the fallback plane stay visible there
	students, err = gw.QueryStudents(ctx)
	require.NoError(t, err)
	assert.Len(t, students, 6)
}

func Test_Gateway_fallsBackOnServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	gw, _ := newTestGateway(t, ts.URL)

	faculty, err := gw.QueryFaculty(context.Background())
	require.NoError(t, err)
	assert.Equal(t, college.FixtureFaculty(), faculty)
}

func Test_Gateway_fallbackUpdateMissingID(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	ts.Close()

	gw, _ := newTestGateway(t, ts.URL)

	_, err := gw.UpdateStudent(context.Background(), 99, college.UpdateStudent{Name: strPtr("Nobody")})
	assert.Equal(t, college.ErrNotFound, err)
}

func strPtr(s string) *string { return &s }
