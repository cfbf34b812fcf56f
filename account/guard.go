package account

import "sync"

const Path = "/account"

type Navigator interface {
	Navigate(path string)
}

type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) {
	f(path)
}

// RedirectGuard sends a signed-in visitor away from /account/<action> to /account. It fires
// once per edge from no session to a session, including when the session is already there on
// the first Observe.
type RedirectGuard struct {
	action    Action
	navigator Navigator

	mu          sync.Mutex
	lastPresent bool
	navigations int
}

func NewRedirectGuard(action Action, navigator Navigator) *RedirectGuard {
	return &RedirectGuard{
		action:      action,
		navigator:   navigator,
		mu:          sync.Mutex{},
		lastPresent: false,
		navigations: 0,
	}
}

// Observe is called with the session presence after every commit. Returns whether it
// navigated.
func (g *RedirectGuard) Observe(sessionPresent bool) bool {
	g.mu.Lock()
	becamePresent := sessionPresent && !g.lastPresent
	g.lastPresent = sessionPresent
	shouldNavigate := becamePresent && g.action.IsSet()
	if shouldNavigate {
		g.navigations++
	}
	g.mu.Unlock()

	if shouldNavigate {
		g.navigator.Navigate(Path)
	}
	return shouldNavigate
}

func (g *RedirectGuard) Navigations() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.navigations
}
