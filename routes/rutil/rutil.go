package rutil

import (
	"net/http"

	"accountsite/app"
)

// MountApp mounts the app at the request path once the session had its chance to resolve.
// Close the result when done.
func MountApp(r *http.Request) *app.App {
	WaitSession(r)
	return app.New(SessionStore(r), r.URL.Path)
}

// RedirectIfNavigated turns a navigation the page asked for into a redirect. Returns true if
// the response has been written.
func RedirectIfNavigated(w http.ResponseWriter, r *http.Request, a *app.App) bool {
	navigations := a.Navigations()
	if len(navigations) == 0 {
		return false
	}

	location := a.Location()
	Logger(r).Info().Strs("navigations", navigations).Msgf("Redirecting to %s", location)
	http.Redirect(w, r, location, http.StatusFound)
	return true
}
