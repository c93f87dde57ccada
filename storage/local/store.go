package localdb

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// Collection keys. One key per entity collection, one for the session record.
const (
	keyUsers         = "cms_users"
	keyStudents      = "cms_students"
	keyCourses       = "cms_courses"
	keyFaculty       = "cms_faculty"
	keyActivities    = "cms_activities"
	keyAttendance    = "cms_attendance"
	keyAssignments   = "cms_assignments"
	keyExams         = "cms_exams"
	keyGrades        = "cms_grades"
	keyNotifications = "cms_notifications"
	keyMessages      = "cms_messages"
	keySession       = "cms_session"
)

const storeFile = "elimu_store.json"

// Store is a durable key-value store: one key per entity collection, values
// are JSON snapshots of the whole collection. A single mutex enforces the
// snapshot-then-write discipline; there is never more than one writer.
type Store struct {
	path string // empty: memory only

	mu   sync.Mutex
	data map[string]json.RawMessage
}

// Open loads the store file under dir, creating dir if needed.
// An empty dir yields a memory-only store (used in tests).
func Open(dir string) (*Store, error) {
	s := &Store{data: make(map[string]json.RawMessage)}
	if dir == "" {
		return s, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "creating store dir")
	}
	s.path = filepath.Join(dir, storeFile)

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, errors.Wrap(err, "reading store file")
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &s.data); err != nil {
			return nil, errors.Wrap(err, "decoding store file")
		}
	}
	return s, nil
}

// flush persists the full snapshot. Caller must hold the mutex.
func (s *Store) flush() error {
	if s.path == "" {
		return nil
	}
	raw, err := json.Marshal(s.data)
	if err != nil {
		return errors.Wrap(err, "encoding store")
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return errors.Wrap(err, "writing store file")
	}
	return nil
}

// get unmarshals the value at key into dst. Caller must hold the mutex.
func (s *Store) get(key string, dst interface{}) (bool, error) {
	raw, ok := s.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, errors.Wrapf(err, "decoding %q", key)
	}
	return true, nil
}

// put stores v at key and flushes. Caller must hold the mutex.
func (s *Store) put(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encoding %q", key)
	}
	s.data[key] = raw
	return s.flush()
}

// delete removes key and flushes. Caller must hold the mutex.
func (s *Store) delete(key string) error {
	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.flush()
}

// ensure seeds key with seed if no record exists yet, then loads it into dst.
// Seeding is lazy and idempotent. Caller must hold the mutex.
func (s *Store) ensure(key string, seed interface{}, dst interface{}) error {
	if _, ok := s.data[key]; !ok {
		if err := s.put(key, seed); err != nil {
			return err
		}
	}
	_, err := s.get(key, dst)
	return err
}

// Session record access. The record is opaque to the store: either a plain
// identity JSON or a signed token, depending on configuration.

func (s *Store) SaveSession(raw []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.put(keySession, string(raw))
}

func (s *Store) LoadSession() ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var record string
	ok, err := s.get(keySession, &record)
	return []byte(record), ok, err
}

func (s *Store) ClearSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.delete(keySession)
}
