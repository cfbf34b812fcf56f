package middleware

import (
	"context"
	"net/http"

	"accountsite/config"
	"accountsite/session"
)

// Session should come after Logger. It starts reading the user out of the request cookies
// without waiting for the result; handlers that care call WaitSession.
func Session(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		store := session.NewStore(GetLogger(r))
		store.Start(r.Context(), session.RequestReader{Request: r})
		next.ServeHTTP(w, withSessionStore(r, store))
	}
	return http.HandlerFunc(fn)
}

type sessionStoreKeyType struct{}

var sessionStoreKey = &sessionStoreKeyType{}

func withSessionStore(r *http.Request, store *session.Store) *http.Request {
	r = r.WithContext(context.WithValue(r.Context(), sessionStoreKey, store))
	return r
}

func GetSessionStore(r *http.Request) *session.Store {
	return r.Context().Value(sessionStoreKey).(*session.Store)
}

// WaitSession gives initialization up to SessionInitTimeout. If it isn't done by then the page
// renders as anonymous.
func WaitSession(r *http.Request) session.Session {
	store := GetSessionStore(r)
	ctx, cancel := context.WithTimeout(r.Context(), config.Cfg.SessionInitTimeout)
	defer cancel()
	if err := store.WaitResolved(ctx); err != nil {
		GetLogger(r).Warn().Err(err).Msg("Session wasn't resolved in time")
	}

	s := store.Read()
	setLoggerUserId(r, s.MaybeUserId)
	return s
}
