package util

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureParam(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/account/login", strings.NewReader(url.Values{
		"email": {"a@b.c"},
	}.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	require.NoError(t, r.ParseForm())

	require.Equal(t, "a@b.c", EnsureParam(r, "email"))

	defer func() {
		rvr := recover()
		httpErr, ok := rvr.(HttpError)
		require.True(t, ok)
		require.Equal(t, http.StatusBadRequest, httpErr.Status)
	}()
	EnsureParam(r, "password")
}

func TestUserIp(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.0.0.1:1234"
	require.Equal(t, "10.0.0.1:1234", UserIp(r))

	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	require.Equal(t, "203.0.113.7", UserIp(r))
}

func TestDecorateTitle(t *testing.T) {
	require.Equal(t, "About · Account Site", DecorateTitle("About"))
	require.Equal(t, "Account Site", DecorateTitle(""))
}
