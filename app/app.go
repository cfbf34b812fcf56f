// Package app ties the session store to the route table: it knows which page a location
// renders, what the link bars look like for the current session, and when the account page
// sends the visitor elsewhere.
package app

import (
	"sync"

	"accountsite/account"
	"accountsite/session"
)

type Page struct {
	Location     string
	Route        Route
	SessionState session.State
	Session      session.Session
	Shell        Shell
	// Only meaningful for RouteAccount
	AccountView account.View
}

// App is one mounted application: a store, a current location and the effects of the page at
// that location. Close it to stop listening to the store.
type App struct {
	store       *session.Store
	unsubscribe func()

	mu          sync.Mutex
	location    string
	route       Route
	guard       *account.RedirectGuard
	navigations []string
}

func New(store *session.Store, location string) *App {
	a := &App{
		store:       store,
		unsubscribe: nil,
		mu:          sync.Mutex{},
		location:    "",
		route:       Route{Name: RouteNotFound, Action: account.NoAction},
		guard:       nil,
		navigations: nil,
	}
	a.unsubscribe = store.Subscribe(a.onSessionChange)
	a.mount(location)
	return a
}

func (a *App) Close() {
	a.unsubscribe()
}

// Navigate moves to another location, as if the history provider did it
func (a *App) Navigate(path string) {
	a.mu.Lock()
	a.navigations = append(a.navigations, path)
	a.mu.Unlock()
	a.mount(path)
}

func (a *App) mount(location string) {
	route := Resolve(location)
	var guard *account.RedirectGuard
	if route.Name == RouteAccount {
		guard = account.NewRedirectGuard(route.Action, account.NavigatorFunc(a.Navigate))
	}

	a.mu.Lock()
	a.location = location
	a.route = route
	a.guard = guard
	a.mu.Unlock()

	if guard != nil {
		guard.Observe(a.store.Read().IsPresent())
	}
}

func (a *App) onSessionChange(s session.Session) {
	a.mu.Lock()
	guard := a.guard
	a.mu.Unlock()

	if guard != nil {
		guard.Observe(s.IsPresent())
	}
}

func (a *App) Location() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.location
}

// Navigations lists every location the app was sent to after it was mounted
func (a *App) Navigations() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	result := make([]string, len(a.navigations))
	copy(result, a.navigations)
	return result
}

func (a *App) Render() Page {
	a.mu.Lock()
	location := a.location
	route := a.route
	a.mu.Unlock()

	state := a.store.State()
	s := a.store.Read()
	page := Page{
		Location:     location,
		Route:        route,
		SessionState: state,
		Session:      s,
		Shell:        NavShell(s),
		AccountView:  account.ViewAnonymousPrompt,
	}
	if route.Name == RouteAccount {
		page.AccountView = account.Decide(route.Action, s.IsPresent())
	}
	return page
}
