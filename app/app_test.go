package app

import (
	"bytes"
	"context"
	"testing"

	"accountsite/account"
	"accountsite/log"
	"accountsite/session"

	"github.com/stretchr/testify/require"
)

func newStore() *session.Store {
	return session.NewStore(log.NewWriterLogger(&bytes.Buffer{}))
}

func TestResolve(t *testing.T) {
	type Test struct {
		Path           string
		ExpectedName   RouteName
		ExpectedAction string
	}
	tests := []Test{
		{Path: "/", ExpectedName: RouteHome},
		{Path: "/about", ExpectedName: RouteAbout},
		{Path: "/about/", ExpectedName: RouteAbout},
		{Path: "/account", ExpectedName: RouteAccount},
		{Path: "/account/", ExpectedName: RouteAccount},
		{Path: "/account/login", ExpectedName: RouteAccount, ExpectedAction: "login"},
		{Path: "/account/signup", ExpectedName: RouteAccount, ExpectedAction: "signup"},
		{Path: "/account/xyz", ExpectedName: RouteAccount, ExpectedAction: "xyz"},
		{Path: "/account/login/extra", ExpectedName: RouteNotFound},
		{Path: "/accounts", ExpectedName: RouteNotFound},
		{Path: "/nope", ExpectedName: RouteNotFound},
		{Path: "", ExpectedName: RouteNotFound},
	}

	for _, tc := range tests {
		route := Resolve(tc.Path)
		require.Equal(t, tc.ExpectedName, route.Name, tc.Path)
		require.Equal(t, account.NewAction(tc.ExpectedAction), route.Action, tc.Path)
	}
}

func TestNavShell(t *testing.T) {
	anonymous := NavShell(session.Anonymous())
	require.Equal(t, []Link{
		{Path: "/", Label: "Home"},
		{Path: "/about", Label: "About"},
		{Path: "/account/signup", Label: "Sign Up"},
	}, anonymous.Left)
	require.Equal(t, []Link{{Path: "/account/login", Label: "Login"}}, anonymous.Right)

	identified := NavShell(session.Identified("alice"))
	require.Equal(t, []Link{
		{Path: "/", Label: "Home"},
		{Path: "/about", Label: "About"},
	}, identified.Left)
	require.Equal(t, []Link{{Path: "/account", Label: "Account"}}, identified.Right)
}

func TestRenderTable(t *testing.T) {
	type Test struct {
		Path         string
		Blob         string
		ExpectedView account.View
	}
	tests := []Test{
		{Path: "/account/signup", Blob: "", ExpectedView: account.ViewSignUpForm},
		{Path: "/account/login", Blob: "", ExpectedView: account.ViewSignInForm},
		{Path: "/account", Blob: "user=alice", ExpectedView: account.ViewSummary},
		{Path: "/account", Blob: "", ExpectedView: account.ViewAnonymousPrompt},
		{Path: "/account/xyz", Blob: "", ExpectedView: account.ViewAnonymousPrompt},
	}

	for _, tc := range tests {
		store := newStore()
		store.Initialize(context.Background(), session.StaticReader(tc.Blob))
		a := New(store, tc.Path)
		page := a.Render()
		require.Equal(t, RouteAccount, page.Route.Name, tc.Path)
		require.Equal(t, tc.ExpectedView, page.AccountView, tc.Path)
		require.Empty(t, a.Navigations(), tc.Path)
		a.Close()
	}
}

// Fresh start, nothing persisted
func TestScenarioNoPersistedEntry(t *testing.T) {
	store := newStore()
	a := New(store, "/")
	defer a.Close()
	store.Initialize(context.Background(), session.StaticReader(""))

	page := a.Render()
	require.Equal(t, RouteHome, page.Route.Name)
	require.Equal(t, []string{"Home", "About", "Sign Up"}, labels(page.Shell.Left))
	require.Equal(t, []string{"Login"}, labels(page.Shell.Right))

	a.Navigate("/account/login")
	page = a.Render()
	require.Equal(t, account.ViewSignInForm, page.AccountView)
	require.Equal(t, "/account/login", a.Location())
}

// Persisted user resolves while the signup page is mounted
func TestScenarioPersistedUserOnSignUp(t *testing.T) {
	store := newStore()
	a := New(store, "/account/signup")
	defer a.Close()

	before := a.Render()
	require.Equal(t, session.StateUninitialized, before.SessionState)
	require.Equal(t, account.ViewSignUpForm, before.AccountView)

	store.Initialize(context.Background(), session.StaticReader("theme=dark; user=alice"))

	require.Equal(t, session.Identified("alice"), store.Read())
	require.Equal(t, []string{"/account"}, a.Navigations())
	page := a.Render()
	require.Equal(t, session.StateResolved, page.SessionState)
	require.Equal(t, "/account", page.Location)
	require.Equal(t, account.ViewSummary, page.AccountView)
	require.Equal(t, []Link{{Path: "/account", Label: "Account"}}, page.Shell.Right)
}

// Session already resolved when the signup page mounts
func TestScenarioSignUpWithResolvedUser(t *testing.T) {
	store := newStore()
	store.Initialize(context.Background(), session.StaticReader("theme=dark; user=alice"))

	a := New(store, "/account/signup")
	defer a.Close()

	require.Equal(t, []string{"/account"}, a.Navigations())
	require.Equal(t, account.ViewSummary, a.Render().AccountView)
}

func TestScenarioUnrecognizedAction(t *testing.T) {
	store := newStore()
	store.Initialize(context.Background(), session.StaticReader(""))
	a := New(store, "/account/xyz")
	defer a.Close()

	page := a.Render()
	require.Equal(t, account.ViewAnonymousPrompt, page.AccountView)
	require.Equal(t, New(store, "/account").Render().AccountView, page.AccountView)
	require.Empty(t, a.Navigations())
}

func TestUninitializedAndResolvedAbsentAreDistinct(t *testing.T) {
	store := newStore()
	a := New(store, "/account")
	defer a.Close()

	before := a.Render()
	store.Initialize(context.Background(), session.StaticReader("theme=dark"))
	after := a.Render()

	require.Equal(t, session.StateUninitialized, before.SessionState)
	require.Equal(t, session.StateResolved, after.SessionState)
	require.Equal(t, before.AccountView, after.AccountView)
	require.Equal(t, before.Shell, after.Shell)
}

func TestSignOutDoesNotNavigate(t *testing.T) {
	store := newStore()
	a := New(store, "/account/login")
	defer a.Close()

	store.Write(session.Identified("alice"))
	require.Equal(t, []string{"/account"}, a.Navigations())

	store.Write(session.Anonymous())
	require.Equal(t, []string{"/account"}, a.Navigations())
	require.Equal(t, account.ViewAnonymousPrompt, a.Render().AccountView)

	a.Navigate("/account/login")
	require.Equal(t, []string{"/account", "/account/login"}, a.Navigations())
	require.Equal(t, account.ViewSignInForm, a.Render().AccountView)
}

func TestClosedAppIgnoresStore(t *testing.T) {
	store := newStore()
	a := New(store, "/account/login")
	a.Close()

	store.Write(session.Identified("alice"))
	require.Empty(t, a.Navigations())
}

func labels(links []Link) []string {
	var result []string
	for _, link := range links {
		result = append(result, link.Label)
	}
	return result
}
