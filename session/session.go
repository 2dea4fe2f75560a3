// Package session owns the authentication lifecycle: token acquisition
// through two identity sources, durable persistence across restarts, and
// the derived authenticated/loading flags every guard decision reads.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	medadmin "github.com/carebase/medadmin-go"
	"github.com/carebase/medadmin-go/audit"
	"github.com/carebase/medadmin-go/metrics"
	"github.com/carebase/medadmin-go/token"
)

// Credentials pairs a freshly issued bearer token with its identity.
// Both are always set together or not at all.
type Credentials struct {
	Token string         `json:"token"`
	User  *medadmin.User `json:"user"`
}

// AuthBackend defines the contract for pluggable auth backends (REST, fake).
// Primary is the organization login; Secondary is the legacy admin login.
// They are attempted in that fixed order, first success wins.
type AuthBackend interface {
	LoginPrimary(ctx context.Context, email, password string) (Credentials, error)
	LoginSecondary(ctx context.Context, email, password string) (Credentials, error)
	Register(ctx context.Context, params medadmin.RegisterParams) (Credentials, error)
	Logout(ctx context.Context) error
}

// TokenSink receives the current bearer token so every subsequent API call
// carries it. The rest client implements this.
type TokenSink interface {
	SetToken(token string)
	ClearToken()
}

// ErrInvalidCredentials is what credential-shaped backend failures are
// normalized to, so the sign-in form shows one consistent message.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrEmailTaken is the normalized duplicate-registration failure.
var ErrEmailTaken = errors.New("an account with this email already exists")

// Store implements medadmin.SessionStore.
//
// Invariant: token is non-empty if and only if identity is non-nil. State is
// never partially updated; login, register and logout replace or clear both
// fields together.
type Store struct {
	backend AuthBackend
	storage Storage
	sink    TokenSink
	logger  *slog.Logger
	metrics *metrics.Metrics
	auditor *audit.Logger
	now     func() time.Time

	initOnce sync.Once

	mu       sync.RWMutex
	loading  bool
	identity *medadmin.User
	token    string
}

var _ medadmin.SessionStore = (*Store)(nil)

// Option configures the Store.
type Option func(*Store)

// WithStorage sets the durable storage. Default: in-memory (nothing survives
// a restart).
func WithStorage(s Storage) Option {
	return func(st *Store) { st.storage = s }
}

// WithTokenSink sets where freshly issued tokens are pushed.
func WithTokenSink(sink TokenSink) Option {
	return func(st *Store) { st.sink = sink }
}

// WithLogger sets a structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(st *Store) { st.logger = l }
}

// WithMetrics records session events on the given metrics instance.
func WithMetrics(m *metrics.Metrics) Option {
	return func(st *Store) { st.metrics = m }
}

// WithAudit emits auth events to the given audit logger.
func WithAudit(a *audit.Logger) Option {
	return func(st *Store) { st.auditor = a }
}

// New creates a session store over the given auth backend.
func New(backend AuthBackend, opts ...Option) *Store {
	st := &Store{
		backend: backend,
		storage: NewMemoryStorage(),
		logger:  slog.Default(),
		now:     time.Now,
		loading: true,
	}
	for _, o := range opts {
		o(st)
	}
	return st
}

// Initialize restores a persisted session from durable storage. It runs at
// most once per process; guards must not decide anything until Loading()
// reports false. Corrupt or expired persisted state degrades to an
// unauthenticated start and never escapes as an error.
func (st *Store) Initialize(ctx context.Context) error {
	st.initOnce.Do(func() {
		defer func() {
			st.mu.Lock()
			st.loading = false
			st.mu.Unlock()
		}()

		snap, err := st.storage.Read()
		if err != nil {
			st.logger.Warn("session restore failed, starting unauthenticated", "error", err)
			_ = st.storage.Clear()
			return
		}
		if snap.Token == "" || snap.User == "" {
			return
		}

		var identity medadmin.User
		if err := json.Unmarshal([]byte(snap.User), &identity); err != nil {
			st.logger.Warn("persisted identity is malformed, clearing session", "error", err)
			_ = st.storage.Clear()
			return
		}

		if token.Expired(snap.Token, st.now()) {
			st.logger.Info("persisted token expired, clearing session")
			_ = st.storage.Clear()
			return
		}

		identity.Role = medadmin.NormalizeRole(string(identity.Role))
		if st.sink != nil {
			st.sink.SetToken(snap.Token)
		}

		st.mu.Lock()
		st.identity = &identity
		st.token = snap.Token
		st.mu.Unlock()

		if st.metrics != nil {
			st.metrics.SetSessionActive(true)
		}
		st.logger.Info("session restored", "email", identity.Email, "role", identity.Role)
	})
	return nil
}

// Login authenticates against the primary identity source, then falls back
// to the secondary one. On success both token and identity are set in
// memory, persisted, and the token is pushed to the sink. When both sources
// reject, durable storage is untouched and the error carries
// user-presentable text.
func (st *Store) Login(ctx context.Context, email, password string) error {
	if st.metrics != nil {
		st.metrics.RecordLoginAttempt()
	}

	creds, err := st.backend.LoginPrimary(ctx, email, password)
	if err != nil {
		if st.metrics != nil {
			st.metrics.RecordLoginFailure("primary", reason(err))
		}
		st.logger.Debug("primary login failed, trying secondary", "error", err)

		creds, err = st.backend.LoginSecondary(ctx, email, password)
		if err != nil {
			if st.metrics != nil {
				st.metrics.RecordLoginFailure("secondary", reason(err))
			}
			st.auditEvent(ctx, "login", "failure", err)
			return normalizeLoginError(err)
		}
	}

	if creds.Token == "" || creds.User == nil {
		return medadmin.ErrUnexpectedFormat
	}
	if err := st.establish(creds); err != nil {
		return err
	}
	st.auditEvent(ctx, "login", "success", nil)
	return nil
}

// Register creates an account and signs it in, following the same success
// path as Login.
func (st *Store) Register(ctx context.Context, params medadmin.RegisterParams) error {
	if params.Name == "" || params.Email == "" || params.Password == "" {
		return fmt.Errorf("medadmin/session: name, email and password are required")
	}

	creds, err := st.backend.Register(ctx, params)
	if err != nil {
		st.auditEvent(ctx, "register", "failure", err)
		return normalizeRegisterError(err)
	}
	if creds.Token == "" || creds.User == nil {
		return medadmin.ErrUnexpectedFormat
	}
	if err := st.establish(creds); err != nil {
		return err
	}
	st.auditEvent(ctx, "register", "success", nil)
	return nil
}

// Logout ends the session. The backend call is best-effort: its failure is
// logged and swallowed, and local state plus durable storage are cleared
// unconditionally so the user is never stuck looking authenticated.
func (st *Store) Logout(ctx context.Context) error {
	if err := st.backend.Logout(ctx); err != nil {
		st.logger.Warn("backend logout failed, clearing local session anyway", "error", err)
	}

	st.mu.Lock()
	st.identity = nil
	st.token = ""
	st.mu.Unlock()

	if st.sink != nil {
		st.sink.ClearToken()
	}
	if err := st.storage.Clear(); err != nil {
		st.logger.Warn("failed to clear session storage", "error", err)
	}
	if st.metrics != nil {
		st.metrics.SetSessionActive(false)
	}
	st.auditEvent(ctx, "logout", "success", nil)
	return nil
}

// Loading reports whether session restoration is still in progress.
func (st *Store) Loading() bool {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.loading
}

// IsAuthenticated reports whether an identity and token are both held.
func (st *Store) IsAuthenticated() bool {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.identity != nil && st.token != ""
}

// Identity returns the current identity, or nil when unauthenticated.
func (st *Store) Identity() *medadmin.User {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.identity
}

// Role returns the current identity's canonical role.
func (st *Store) Role() medadmin.Role {
	st.mu.RLock()
	defer st.mu.RUnlock()
	if st.identity == nil {
		return medadmin.RoleUnknown
	}
	return st.identity.Role
}

// Token returns the current bearer token.
func (st *Store) Token() string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.token
}

// establish commits fresh credentials: memory, sink, and durable storage,
// in that order, with the role normalized before anything downstream sees it.
func (st *Store) establish(creds Credentials) error {
	identity := *creds.User
	identity.Role = medadmin.NormalizeRole(string(identity.Role))

	rawIdentity, err := json.Marshal(&identity)
	if err != nil {
		return fmt.Errorf("medadmin/session: %w", err)
	}

	st.mu.Lock()
	st.identity = &identity
	st.token = creds.Token
	st.mu.Unlock()

	if st.sink != nil {
		st.sink.SetToken(creds.Token)
	}
	if err := st.storage.Write(Snapshot{Token: creds.Token, User: string(rawIdentity)}); err != nil {
		st.logger.Warn("failed to persist session", "error", err)
	}
	if st.metrics != nil {
		st.metrics.SetSessionActive(true)
	}
	return nil
}

func (st *Store) auditEvent(ctx context.Context, action, result string, err error) {
	if st.auditor == nil {
		return
	}
	e := audit.Event{
		RequestID: audit.RequestID(ctx),
		Action:    action,
		Result:    result,
	}
	if id := st.Identity(); id != nil {
		e.ActorID = id.ID
		e.Role = string(id.Role)
	}
	if err != nil {
		e.Error = err.Error()
	}
	st.auditor.Log(e)
}

// credentialKeywords mark backend messages that mean "bad credentials" in
// either identity source's phrasing.
var credentialKeywords = []string{
	"invalid", "incorrect", "password", "credential", "not found", "no user", "unauthorized",
}

func normalizeLoginError(err error) error {
	var apiErr *medadmin.APIError
	if errors.As(err, &apiErr) {
		msg := strings.ToLower(apiErr.Message)
		for _, kw := range credentialKeywords {
			if strings.Contains(msg, kw) {
				return ErrInvalidCredentials
			}
		}
	}
	return err
}

func normalizeRegisterError(err error) error {
	var apiErr *medadmin.APIError
	if errors.As(err, &apiErr) {
		msg := strings.ToLower(apiErr.Message)
		if strings.Contains(msg, "already exists") || strings.Contains(msg, "duplicate") || strings.Contains(msg, "already registered") {
			return ErrEmailTaken
		}
	}
	return err
}

func reason(err error) string {
	switch {
	case errors.Is(err, medadmin.ErrUnreachable):
		return "unreachable"
	case errors.Is(err, medadmin.ErrUnexpectedFormat):
		return "malformed"
	default:
		return "rejected"
	}
}
