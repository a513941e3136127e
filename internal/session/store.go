// internal/session/store.go
package session

import (
	"context"
	"sync"

	"petbloom/internal/config"
	"petbloom/internal/domain/auth"
	"petbloom/internal/gateway"
	"petbloom/internal/pkg/credential"
	"petbloom/internal/pkg/notify"
	"petbloom/internal/pkg/token"

	"go.uber.org/zap"
)

// State of the session lifecycle.
type State int

const (
	StateUnresolved State = iota
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateUnresolved:
		return "unresolved"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Snapshot is the published view of the session. Consumers read it and
// never mutate it.
type Snapshot struct {
	State    State
	Identity *auth.Identity
	Loading  bool
}

// Store owns the session state. All identity-changing operations go
// through it; consumers observe via Current and Subscribe.
type Store struct {
	gw       *gateway.Client
	creds    credential.Store
	notifier notify.Notifier
	mode     config.Mode
	logger   *zap.Logger

	mu       sync.RWMutex
	state    State
	identity *auth.Identity
	loading  bool
	subs     map[int]func(Snapshot)
	nextSub  int
}

// NewStore wires the store to its collaborators and resolves the initial
// state. There is no persisted-session check: the durable credential slot
// only feeds the gateway's bearer hook, so startup settles in Anonymous
// immediately.
func NewStore(gw *gateway.Client, creds credential.Store, notifier notify.Notifier, mode config.Mode, logger *zap.Logger) *Store {
	if notifier == nil {
		notifier = notify.Discard
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		gw:       gw,
		creds:    creds,
		notifier: notifier,
		mode:     mode,
		logger:   logger,
		state:    StateAnonymous,
		subs:     make(map[int]func(Snapshot)),
	}
	gw.OnUnauthorized(s.handleUnauthorized)
	return s
}

// Current returns the published session state.
func (s *Store) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{State: s.state, Identity: s.identity, Loading: s.loading}
}

// Subscribe registers a consumer for state changes and returns an
// unsubscribe func. The callback runs synchronously on the mutating
// goroutine and must not call back into the store.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// ========== Operations ==========

// Login attempts backend authentication. On any backend failure in demo
// mode it adopts a synthetic identity instead; in strict mode the
// classified error is propagated and the store settles in Anonymous.
func (s *Store) Login(ctx context.Context, email, password string) (*auth.Identity, error) {
	s.setLoading(true)

	var ident auth.Identity
	err := s.gw.Post(ctx, "/auth/login", &auth.LoginRequest{Email: email, Password: password}, &ident)

	var out outcome
	switch {
	case err == nil:
		out = backendOutcome(&ident)
	case s.mode == config.ModeStrict:
		s.settleAnonymous()
		s.notifier.Notify(notify.Error, err.Error())
		return nil, err
	default:
		s.logger.Info("backend login failed, falling back to demo identity",
			zap.String("email", email),
			zap.Error(err),
		)
		out = syntheticLogin(email)
	}

	s.adopt(out.identity)
	if out.source == SourceBackend {
		s.notifier.Notify(notify.Success, "Login successful!")
	} else {
		s.notifier.Notify(notify.Success, "Demo login successful!")
	}
	return out.identity, nil
}

// Register is symmetric to Login; the synthetic identity carries the
// supplied profile instead of derived values.
func (s *Store) Register(ctx context.Context, email, password, fullName, phone string) (*auth.Identity, error) {
	s.setLoading(true)

	req := &auth.RegisterRequest{Email: email, Password: password, FullName: fullName, Phone: phone}
	var ident auth.Identity
	err := s.gw.Post(ctx, "/auth/register", req, &ident)

	var out outcome
	switch {
	case err == nil:
		out = backendOutcome(&ident)
	case s.mode == config.ModeStrict:
		s.settleAnonymous()
		s.notifier.Notify(notify.Error, err.Error())
		return nil, err
	default:
		s.logger.Info("backend registration failed, falling back to demo identity",
			zap.String("email", email),
			zap.Error(err),
		)
		out = syntheticRegistration(email, fullName, phone)
	}

	s.adopt(out.identity)
	if out.source == SourceBackend {
		s.notifier.Notify(notify.Success, "Registration successful!")
	} else {
		s.notifier.Notify(notify.Success, "Demo registration successful!")
	}
	return out.identity, nil
}

// LoginWithGoogle models the stubbed federated login. No backend call is
// made; it always produces a synthetic identity and never fails.
func (s *Store) LoginWithGoogle(ctx context.Context) (*auth.Identity, error) {
	out := syntheticGoogle()
	s.adopt(out.identity)
	s.notifier.Notify(notify.Success, "Google login successful!")
	return out.identity, nil
}

// Logout clears the identity and credential. Never fails.
func (s *Store) Logout(ctx context.Context) error {
	if s.creds != nil {
		if err := s.creds.Clear(); err != nil {
			s.logger.Warn("failed to clear stored credential", zap.Error(err))
		}
	}
	s.gw.ClearAuthorization()

	s.mu.Lock()
	s.state = StateAnonymous
	s.identity = nil
	s.loading = false
	s.mu.Unlock()
	s.publish()

	s.notifier.Notify(notify.Success, "Logged out successfully!")
	return nil
}

// ========== Internals ==========

// adopt makes the identity current: persist the credential, mirror it
// into the gateway, transition to Authenticated, publish.
func (s *Store) adopt(identity *auth.Identity) {
	identity.IssuedAt = token.Inspect(identity.AccessToken).IssuedAt

	if s.creds != nil {
		if err := s.creds.Save(identity.AccessToken); err != nil {
			s.logger.Warn("failed to persist credential", zap.Error(err))
		}
	}
	s.gw.SetAuthorization(identity.AccessToken)

	s.mu.Lock()
	s.state = StateAuthenticated
	s.identity = identity
	s.loading = false
	s.mu.Unlock()
	s.publish()
}

func (s *Store) settleAnonymous() {
	s.mu.Lock()
	s.state = StateAnonymous
	s.identity = nil
	s.loading = false
	s.mu.Unlock()
	s.publish()
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
	s.publish()
}

// handleUnauthorized reacts to a gateway 401. The gateway has already
// cleared the credential and its mirrored header.
func (s *Store) handleUnauthorized() {
	s.mu.Lock()
	changed := s.state == StateAuthenticated
	if changed {
		s.state = StateAnonymous
		s.identity = nil
		s.loading = false
	}
	s.mu.Unlock()

	if changed {
		s.logger.Info("session invalidated by unauthorized response")
		s.publish()
	}
}

func (s *Store) publish() {
	snap := s.Current()

	s.mu.RLock()
	fns := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(snap)
	}
}
