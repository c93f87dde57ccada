package client

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/elimu/core"
	"github.com/trezcool/elimu/core/user"
	localdb "github.com/trezcool/elimu/storage/local"
)

// Session holds the authenticated identity for the running client and keeps it
// in the local store so it survives restarts. Auth always resolves after a
// short artificial delay so callers treat it as asynchronous whether the
// answer came from the remote API or the local directory.
type Session struct {
	conf    *core.Config
	gateway *Gateway
	store   *localdb.Store
	// localUsers backs the auth paths that need password access. The remote
	// user listing strips passwords, so admin login and the login fallback
	// match against the local directory.
	localUsers *user.Service
	validate   *validator.Validate

	mu       sync.RWMutex
	identity *user.Identity
}

func NewSession(conf *core.Config, gateway *Gateway, store *localdb.Store) *Session {
	return &Session{
		conf:       conf,
		gateway:    gateway,
		store:      store,
		localUsers: user.NewService(localdb.NewUserRepository(store)),
		validate:   validator.New(),
	}
}

// Current returns the active identity, or nil when logged out.
func (s *Session) Current() *user.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	ident := *s.identity
	return &ident
}

// Restore loads a previously persisted session record. A missing or unreadable
// record means logged out; it is never an error.
func (s *Session) Restore(ctx context.Context) *user.Identity {
	raw, ok, err := s.store.LoadSession()
	if err != nil || !ok {
		return nil
	}
	ident, err := s.decodeRecord(raw)
	if err != nil {
		// stale or tampered record, drop it
		_ = s.store.ClearSession()
		return nil
	}
	s.mu.Lock()
	s.identity = &ident
	s.mu.Unlock()
	return s.Current()
}

// Login authenticates against the remote API first. Rejected credentials are
// final; only a plane failure falls through to the local directory.
func (s *Session) Login(ctx context.Context, email, pwd string) (user.Identity, error) {
	if err := sleep(ctx, s.conf.Client.LoginDelay); err != nil {
		return user.Identity{}, err
	}

	ident, err := s.gateway.remote.Login(ctx, email, pwd)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			return user.Identity{}, err
		}
		ident, err = s.localUsers.Authenticate(ctx, email, pwd)
		if err != nil {
			return user.Identity{}, err
		}
	}
	if err := s.establish(ident); err != nil {
		return user.Identity{}, err
	}
	return ident, nil
}

// LoginAsAdmin grants an admin session to whoever holds an admin secret. It is
// a local-only path; the remote API never sees the secret.
func (s *Session) LoginAsAdmin(ctx context.Context, secret string) (user.Identity, error) {
	if err := sleep(ctx, s.conf.Client.AdminLoginDelay); err != nil {
		return user.Identity{}, err
	}

	ident, err := s.localUsers.AuthenticateAdmin(ctx, secret)
	if err != nil {
		return user.Identity{}, err
	}
	if err := s.establish(ident); err != nil {
		return user.Identity{}, err
	}
	return ident, nil
}

// Register creates a directory entry through the gateway and logs the new user
// in. The email must not already exist on the serving plane.
func (s *Session) Register(ctx context.Context, nu user.NewUser) (user.Identity, error) {
	if err := sleep(ctx, s.conf.Client.LoginDelay); err != nil {
		return user.Identity{}, err
	}
	if err := nu.Validate(s.validate); err != nil {
		return user.Identity{}, err
	}

	created, err := user.NewService(s.gateway).Create(ctx, nu)
	if err != nil {
		return user.Identity{}, err
	}
	ident := created.Identity()
	if err := s.establish(ident); err != nil {
		return user.Identity{}, err
	}
	return ident, nil
}

// Logout clears the in-memory identity and the persisted record.
func (s *Session) Logout() error {
	s.mu.Lock()
	s.identity = nil
	s.mu.Unlock()
	return s.store.ClearSession()
}

func (s *Session) establish(ident user.Identity) error {
	raw, err := s.encodeRecord(ident)
	if err != nil {
		return err
	}
	if err := s.store.SaveSession(raw); err != nil {
		return err
	}
	s.mu.Lock()
	s.identity = &ident
	s.mu.Unlock()
	return nil
}

type sessionClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.StandardClaims
}

func (s *Session) encodeRecord(ident user.Identity) ([]byte, error) {
	if !s.conf.Client.SignSessions {
		return json.Marshal(ident)
	}
	claims := sessionClaims{
		Name:  ident.Name,
		Email: ident.Email,
		Role:  ident.Role,
		StandardClaims: jwt.StandardClaims{
			Subject:  strconv.Itoa(ident.ID),
			IssuedAt: time.Now().Unix(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.conf.SecretKey))
	if err != nil {
		return nil, errors.Wrap(err, "signing session")
	}
	return []byte(token), nil
}

func (s *Session) decodeRecord(raw []byte) (user.Identity, error) {
	if !s.conf.Client.SignSessions {
		// trust-on-read: the record is accepted as-is
		var ident user.Identity
		if err := json.Unmarshal(raw, &ident); err != nil {
			return user.Identity{}, errors.Wrap(err, "decoding session")
		}
		return ident, nil
	}

	var claims sessionClaims
	_, err := jwt.ParseWithClaims(string(raw), &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.conf.SecretKey), nil
	})
	if err != nil {
		return user.Identity{}, errors.Wrap(err, "verifying session")
	}
	id, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return user.Identity{}, errors.Wrap(err, "decoding session subject")
	}
	return user.Identity{ID: id, Name: claims.Name, Email: claims.Email, Role: claims.Role}, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
