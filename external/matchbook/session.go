package matchbook

import (
	"context"
	"sync"

	crerr "github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/pool"
)

// ErrNotAdmin is returned by mutations before a successful Login.
var ErrNotAdmin = crerr.New("admin login required")

// View is a copy of what the session last read from the server. It may be stale.
type View struct {
	Matches   []Match
	NextMatch *NextMatch
	Stats     Stats
	Admin     bool
}

// Session mirrors the server resources for a single user. Local state is
// never patched after a mutation; every successful write triggers Refresh.
type Session struct {
	client *Client

	mu     sync.RWMutex
	view   View
	secret string
}

func NewSession(client *Client) *Session {
	return &Session{client: client, view: View{Matches: []Match{}}}
}

// View returns a snapshot of the current local state.
func (s *Session) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.view
	out.Matches = append([]Match(nil), s.view.Matches...)
	if s.view.NextMatch != nil {
		next := *s.view.NextMatch
		out.NextMatch = &next
	}
	return out
}

func (s *Session) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view.Admin
}

// Login keeps secret for later mutations only when the server accepts it.
func (s *Session) Login(ctx context.Context, secret string) error {
	if err := s.client.Authenticate(ctx, secret); err != nil {
		return err
	}

	s.mu.Lock()
	s.secret = secret
	s.view.Admin = true
	s.mu.Unlock()
	return nil
}

func (s *Session) Logout() {
	s.mu.Lock()
	s.secret = ""
	s.view.Admin = false
	s.mu.Unlock()
}

// Refresh reads matches, next match and stats concurrently. Each resource
// that loads successfully replaces its local copy even if another fails.
func (s *Session) Refresh(ctx context.Context) error {
	p := pool.New().WithErrors().WithContext(ctx)

	p.Go(func(ctx context.Context) error {
		matches, err := s.client.ListMatches(ctx)
		if err != nil {
			return crerr.Wrap(err, "refresh matches")
		}
		s.mu.Lock()
		s.view.Matches = matches
		s.mu.Unlock()
		return nil
	})
	p.Go(func(ctx context.Context) error {
		next, err := s.client.GetNextMatch(ctx)
		if err != nil {
			return crerr.Wrap(err, "refresh next match")
		}
		s.mu.Lock()
		s.view.NextMatch = next
		s.mu.Unlock()
		return nil
	})
	p.Go(func(ctx context.Context) error {
		return s.RefreshStats(ctx)
	})

	return p.Wait()
}

// RefreshStats reads only the stats resource.
func (s *Session) RefreshStats(ctx context.Context) error {
	stats, err := s.client.GetStats(ctx)
	if err != nil {
		return crerr.Wrap(err, "refresh stats")
	}
	s.mu.Lock()
	s.view.Stats = stats
	s.mu.Unlock()
	return nil
}

func (s *Session) AddMatch(ctx context.Context, in MatchInput) (int64, error) {
	secret, err := s.adminSecret()
	if err != nil {
		return 0, err
	}
	id, err := s.client.CreateMatch(ctx, secret, in)
	if err != nil {
		return 0, err
	}
	return id, s.Refresh(ctx)
}

func (s *Session) UpdateMatch(ctx context.Context, id int64, in MatchInput) error {
	secret, err := s.adminSecret()
	if err != nil {
		return err
	}
	if err := s.client.UpdateMatch(ctx, secret, id, in); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

func (s *Session) DeleteMatch(ctx context.Context, id int64) error {
	secret, err := s.adminSecret()
	if err != nil {
		return err
	}
	if err := s.client.DeleteMatch(ctx, secret, id); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

func (s *Session) SetNextMatch(ctx context.Context, in NextMatch) error {
	secret, err := s.adminSecret()
	if err != nil {
		return err
	}
	if err := s.client.SetNextMatch(ctx, secret, in); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

func (s *Session) AddStats(ctx context.Context, in Stats) (int64, error) {
	secret, err := s.adminSecret()
	if err != nil {
		return 0, err
	}
	id, err := s.client.AddStats(ctx, secret, in)
	if err != nil {
		return 0, err
	}
	return id, s.Refresh(ctx)
}

func (s *Session) adminSecret() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.view.Admin {
		return "", ErrNotAdmin
	}
	return s.secret, nil
}
