package session

import (
	"sync"

	model "kemazon-client/internal/models"
)

// Snapshot is an immutable view of the authentication state at one point in
// time. Listeners receive snapshots, never the live session.
type Snapshot struct {
	Token      string
	User       model.User
	IsLoggedIn bool
}

// Session holds the bearer token and user identity used to attribute bids.
// It is an explicit dependency handed to the API client and views; there is
// no package-level session.
type Session struct {
	mu        sync.RWMutex
	token     string
	user      model.User
	loggedIn  bool
	nextID    int
	listeners map[int]func(Snapshot)
}

func New() *Session {
	return &Session{listeners: make(map[int]func(Snapshot))}
}

// Load seeds the session from previously stored credentials. Invalid input
// (missing token or user id) leaves the session logged out, mirroring the
// cleanup the web client performs on bad stored state.
func (s *Session) Load(token string, user model.User) {
	if token == "" || user.ID == 0 {
		s.Logout()
		return
	}
	s.Login(token, user)
}

// Login replaces the session credentials and notifies listeners.
func (s *Session) Login(token string, user model.User) {
	s.mu.Lock()
	s.token = token
	s.user = user
	s.loggedIn = true
	snap := s.snapshotLocked()
	fns := s.listenersLocked()
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

// Logout clears the credentials and notifies listeners.
func (s *Session) Logout() {
	s.mu.Lock()
	s.token = ""
	s.user = model.User{}
	s.loggedIn = false
	snap := s.snapshotLocked()
	fns := s.listenersLocked()
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

// OnChange registers a listener called after every login/logout. The
// returned func detaches the listener; it is safe to call more than once.
func (s *Session) OnChange(fn func(Snapshot)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Token returns the current bearer token, empty when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// UserID returns the authenticated user id, zero when logged out.
func (s *Session) UserID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.ID
}

// Current returns a snapshot of the session state.
func (s *Session) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// IsLoggedIn reports whether a user is authenticated.
func (s *Session) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loggedIn
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{Token: s.token, User: s.user, IsLoggedIn: s.loggedIn}
}

func (s *Session) listenersLocked() []func(Snapshot) {
	fns := make([]func(Snapshot), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	return fns
}
