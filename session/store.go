package session

import (
	"context"
	"fmt"
	"sync"

	"accountsite/log"
	"accountsite/oops"
)

type State int

const (
	StateUninitialized State = iota
	StateResolved
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

type subscriber struct {
	id int
	fn func(Session)
}

// Store is the single owner of the current Session. Views get it passed in and go through
// Read/Write; nobody else keeps a copy of the cell.
type Store struct {
	logger log.Logger
	once   sync.Once

	mu               sync.Mutex
	session          Session
	state            State
	resolved         chan struct{}
	subscribers      []subscriber
	nextSubscriberId int
}

func NewStore(logger log.Logger) *Store {
	return &Store{
		logger:           logger,
		once:             sync.Once{},
		mu:               sync.Mutex{},
		session:          Anonymous(),
		state:            StateUninitialized,
		resolved:         make(chan struct{}),
		subscribers:      nil,
		nextSubscriberId: 0,
	}
}

func (s *Store) Read() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// Write replaces the session. Last write wins.
func (s *Store) Write(session Session) {
	s.commit(session, false)
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Resolved is closed once initialization has finished, successfully or not
func (s *Store) Resolved() <-chan struct{} {
	return s.resolved
}

func (s *Store) WaitResolved(ctx context.Context) error {
	select {
	case <-s.resolved:
		return nil
	case <-ctx.Done():
		return oops.Wrap(ctx.Err())
	}
}

// Subscribe registers fn to be called after every change of the session value. Calls happen
// on the writer's goroutine, outside of the store lock.
func (s *Store) Subscribe(fn func(Session)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSubscriberId
	s.nextSubscriberId++
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Start runs Initialize in the background so that the caller can render right away
func (s *Store) Start(ctx context.Context, reader Reader) {
	go s.Initialize(ctx, reader)
}

// Initialize looks for the user entry in the persisted blob. Only the first call does any
// work; later calls wait for it and return. A blob that can't be read or parsed leaves the
// session anonymous.
func (s *Store) Initialize(ctx context.Context, reader Reader) {
	s.once.Do(func() {
		defer s.resolve()

		session, err := load(ctx, reader)
		if err != nil {
			s.logger.Warn().Err(err).Msg("Error getting user info")
			return
		}
		if session.IsPresent() {
			s.commit(session, true)
		}
	})
}

func load(ctx context.Context, reader Reader) (session Session, err error) {
	defer func() {
		if rvr := recover(); rvr != nil {
			session = Anonymous()
			err = &SessionParseError{Blob: "", Reason: fmt.Sprintf("reader panicked: %v", rvr)}
		}
	}()

	blob, err := reader.ReadPersisted(ctx)
	if err != nil {
		return Anonymous(), &SessionParseError{Blob: "", Reason: err.Error()}
	}

	entries, err := ParseEntries(blob)
	if err != nil {
		return Anonymous(), err
	}

	session, _ = SessionFromEntries(entries)
	return session, nil
}

// resolve runs last in Initialize, after subscribers have seen the initial session
func (s *Store) resolve() {
	s.mu.Lock()
	s.state = StateResolved
	s.mu.Unlock()
	close(s.resolved)
}

// markResolved is set for the initial commit so that subscribers already see StateResolved
func (s *Store) commit(session Session, markResolved bool) {
	s.mu.Lock()
	changed := !s.session.Equal(session)
	s.session = session
	if markResolved {
		s.state = StateResolved
	}
	var toNotify []subscriber
	if changed {
		toNotify = make([]subscriber, len(s.subscribers))
		copy(toNotify, s.subscribers)
	}
	s.mu.Unlock()

	for _, sub := range toNotify {
		sub.fn(session)
	}
}
