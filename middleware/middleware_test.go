package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"accountsite/session"

	"github.com/stretchr/testify/require"
)

func TestRedirectSlashes(t *testing.T) {
	handler := RedirectSlashes("/static")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	type Test struct {
		Path             string
		ExpectedStatus   int
		ExpectedLocation string
	}
	tests := []Test{
		{Path: "/", ExpectedStatus: http.StatusOK},
		{Path: "/about", ExpectedStatus: http.StatusOK},
		{Path: "/about/", ExpectedStatus: http.StatusMovedPermanently, ExpectedLocation: "/about"},
		{Path: "/account/login/?a=b", ExpectedStatus: http.StatusMovedPermanently, ExpectedLocation: "/account/login?a=b"},
		{Path: "//evil.example/", ExpectedStatus: http.StatusMovedPermanently, ExpectedLocation: "/evil.example"},
		{Path: "/static/dir/", ExpectedStatus: http.StatusOK},
	}

	for _, tc := range tests {
		r := httptest.NewRequest(http.MethodGet, tc.Path, nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		require.Equal(t, tc.ExpectedStatus, w.Code, tc.Path)
		require.Equal(t, tc.ExpectedLocation, w.Header().Get("Location"), tc.Path)
	}
}

func TestSessionMiddleware(t *testing.T) {
	type Test struct {
		Cookie   string
		Expected session.Session
	}
	tests := []Test{
		{Cookie: "", Expected: session.Anonymous()},
		{Cookie: "theme=dark; user=alice", Expected: session.Identified("alice")},
		{Cookie: "theme=dark; user", Expected: session.Anonymous()},
	}

	for _, tc := range tests {
		var seen session.Session
		var state session.State
		handler := Logger(Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = WaitSession(r)
			state = GetSessionStore(r).State()
		})))

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.Cookie != "" {
			r.Header.Set("Cookie", tc.Cookie)
		}
		handler.ServeHTTP(httptest.NewRecorder(), r)
		require.Equal(t, tc.Expected, seen, tc.Cookie)
		require.Equal(t, session.StateResolved, state, tc.Cookie)
	}
}
