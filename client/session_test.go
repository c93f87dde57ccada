package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/elimu/core"
	"github.com/trezcool/elimu/core/user"
	localdb "github.com/trezcool/elimu/storage/local"
)

func newTestSession(t *testing.T, conf *core.Config) (*Session, *localdb.Store) {
	store, err := localdb.Open("")
	require.NoError(t, err)
	return NewSession(conf, NewGateway(conf, store, testLogger{}), store), store
}

func deadServerConf() *core.Config {
	ts := httptest.NewServer(http.NotFoundHandler())
	ts.Close()
	return testConf(ts.URL)
}

func Test_Session_LoginFallsBackToLocalDirectory(t *testing.T) {
	sess, store := newTestSession(t, deadServerConf())
	ctx := context.Background()

	ident, err := sess.Login(ctx, "bob@student.edu", "student123")
	require.NoError(t, err)
	assert.Equal(t, user.Identity{ID: 3, Name: "Bob Student", Email: "bob@student.edu", Role: user.RoleStudent}, ident)
	require.NotNil(t, sess.Current())

	// the record survives a restart
	restored := NewSession(testConf("http://localhost:0"), NewGateway(testConf("http://localhost:0"), store, testLogger{}), store)
	assert.Equal(t, &ident, restored.Restore(ctx))

	_, err = sess.Login(ctx, "bob@student.edu", "wrong")
	assert.Equal(t, user.ErrInvalidCredentials, err)
}

func Test_Session_LoginRemote(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		var creds user.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))

		w.Header().Set("Content-Type", "application/json")
		if creds.Email == "remote@college.edu" && creds.Password == "remote123" {
			_ = json.NewEncoder(w).Encode(user.Identity{ID: 9, Name: "Remote User", Email: creds.Email, Role: user.RoleFaculty})
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
	}))
	defer ts.Close()

	sess, _ := newTestSession(t, testConf(ts.URL))
	ctx := context.Background()

	ident, err := sess.Login(ctx, "remote@college.edu", "remote123")
	require.NoError(t, err)
	assert.Equal(t, 9, ident.ID)

	// a remote rejection is final, there is no local retry
	_, err = sess.Login(ctx, "bob@student.edu", "student123")
	assert.Equal(t, user.ErrInvalidCredentials, err)
}

func Test_Session_LoginAsAdmin(t *testing.T) {
	sess, _ := newTestSession(t, deadServerConf())
	ctx := context.Background()

	ident, err := sess.LoginAsAdmin(ctx, "admin123")
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, ident.Role)
	assert.Equal(t, 1, ident.ID)

	_, err = sess.LoginAsAdmin(ctx, "faculty123")
	assert.Equal(t, user.ErrInvalidCredentials, err)
}

func Test_Session_Register(t *testing.T) {
	sess, _ := newTestSession(t, deadServerConf())
	ctx := context.Background()

	ident, err := sess.Register(ctx, user.NewUser{Name: "New Guy", Email: "new@college.edu", Password: "pwd123", Role: user.RoleStudent})
	require.NoError(t, err)
	assert.Equal(t, 4, ident.ID)
	assert.Equal(t, user.RoleStudent, ident.Role)
	require.NotNil(t, sess.Current())

	_, err = sess.Register(ctx, user.NewUser{Name: "Bob Again", Email: "bob@student.edu", Password: "x", Role: user.RoleStudent})
	require.Error(t, err)
	_, ok := err.(*core.ValidationError)
	assert.True(t, ok, "want *core.ValidationError, got %T", err)

	// the email is cleaned before the duplicate check
	_, err = sess.Register(ctx, user.NewUser{Name: "Bob Again", Email: "  BOB@student.edu ", Password: "x", Role: user.RoleStudent})
	require.Error(t, err)
	_, ok = err.(*core.ValidationError)
	assert.True(t, ok, "want *core.ValidationError, got %T", err)
}

func Test_Session_Logout(t *testing.T) {
	sess, store := newTestSession(t, deadServerConf())
	ctx := context.Background()

	_, err := sess.Login(ctx, "alice@college.edu", "faculty123")
	require.NoError(t, err)
	require.NotNil(t, sess.Current())

	require.NoError(t, sess.Logout())
	assert.Nil(t, sess.Current())
	_, ok, err := store.LoadSession()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, sess.Restore(ctx))
}

func Test_Session_signedRecords(t *testing.T) {
	conf := deadServerConf()
	conf.Client.SignSessions = true

	sess, store := newTestSession(t, conf)
	ctx := context.Background()

	ident, err := sess.Login(ctx, "bob@student.edu", "student123")
	require.NoError(t, err)

	restored := NewSession(conf, NewGateway(conf, store, testLogger{}), store)
	assert.Equal(t, &ident, restored.Restore(ctx))

	// a tampered record is dropped instead of trusted
	raw, ok, err := store.LoadSession()
	require.NoError(t, err)
	require.True(t, ok)
	raw[len(raw)-1] ^= 0xff
	require.NoError(t, store.SaveSession(raw))

	tampered := NewSession(conf, NewGateway(conf, store, testLogger{}), store)
	assert.Nil(t, tampered.Restore(ctx))
}
