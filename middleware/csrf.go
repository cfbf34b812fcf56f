package middleware

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"net/http"

	"accountsite/config"
	"accountsite/util"

	"github.com/gorilla/securecookie"
)

const CSRFFormKey = "authenticity_token"
const csrfCookieName = "accountsite_csrf"
const csrfTokenLength = 16

var csrfValidationFailed = errors.New("CSRF validation failed")

var secureCookie *securecookie.SecureCookie

func init() {
	secureCookie = securecookie.New(config.Cfg.SessionHashKey, config.Cfg.SessionBlockKey)
}

type csrfCookieData struct {
	Token []byte
}

// CSRF hands every visitor a random token in an encrypted cookie and checks the masked copy
// that forms send back. It never touches the user entry.
func CSRF(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		rawToken := readCSRFCookie(r)
		if rawToken == nil {
			rawToken = mustNewCSRFToken()
			mustSetCSRFCookie(w, rawToken)
		}

		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			var incomingToken string
			err := r.ParseForm()
			if err == nil {
				incomingToken = r.PostFormValue(CSRFFormKey)
			}
			if incomingToken == "" {
				incomingToken = r.Header.Get("X-CSRF-Token")
			}

			if !validateCSRFToken(incomingToken, rawToken) {
				panic(util.HttpError{
					Status: http.StatusForbidden,
					Inner:  csrfValidationFailed,
				})
			}
		}

		csrfToken := mustMaskCSRFToken(rawToken)
		next.ServeHTTP(w, withCSRFToken(r, csrfToken))
	}
	return http.HandlerFunc(fn)
}

func readCSRFCookie(r *http.Request) []byte {
	cookie, err := r.Cookie(csrfCookieName)
	if err != nil {
		return nil
	}

	var data csrfCookieData
	if err := secureCookie.Decode(csrfCookieName, cookie.Value, &data); err != nil {
		GetLogger(r).Info().Err(err).Msg("Couldn't decode csrf cookie")
		return nil
	}
	if len(data.Token) != csrfTokenLength {
		return nil
	}
	return data.Token
}

func mustNewCSRFToken() []byte {
	token := make([]byte, csrfTokenLength)
	if _, err := rand.Read(token); err != nil {
		panic(err)
	}
	return token
}

func mustSetCSRFCookie(w http.ResponseWriter, token []byte) {
	encoded, err := secureCookie.Encode(csrfCookieName, csrfCookieData{Token: token})
	if err != nil {
		panic(err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     csrfCookieName,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		Secure:   config.Cfg.Env == config.EnvProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

func validateCSRFToken(csrfToken string, rawToken []byte) bool {
	maskedCSRFToken, err := base64.RawStdEncoding.DecodeString(csrfToken)
	if err != nil {
		return false
	}

	if len(maskedCSRFToken) != csrfTokenLength*2 {
		return false
	}

	oneTimePad := maskedCSRFToken[:csrfTokenLength]
	encryptedCSRFToken := maskedCSRFToken[csrfTokenLength:]
	decodedCSRFToken := make([]byte, csrfTokenLength)
	for i := 0; i < csrfTokenLength; i++ {
		decodedCSRFToken[i] = oneTimePad[i] ^ encryptedCSRFToken[i]
	}

	return subtle.ConstantTimeCompare(decodedCSRFToken, rawToken) == 1
}

func mustMaskCSRFToken(rawToken []byte) string {
	oneTimePad := make([]byte, csrfTokenLength)
	_, err := rand.Read(oneTimePad)
	if err != nil {
		panic(err)
	}

	encryptedCSRFToken := make([]byte, csrfTokenLength)
	for i := 0; i < csrfTokenLength; i++ {
		encryptedCSRFToken[i] = oneTimePad[i] ^ rawToken[i]
	}
	maskedCSRFToken := append(oneTimePad, encryptedCSRFToken...)

	return base64.RawStdEncoding.EncodeToString(maskedCSRFToken)
}

type csrfTokenKeyType struct{}

var csrfTokenKey = &csrfTokenKeyType{}

func withCSRFToken(r *http.Request, csrfToken string) *http.Request {
	r = r.WithContext(context.WithValue(r.Context(), csrfTokenKey, csrfToken))
	return r
}

func GetCSRFToken(r *http.Request) string {
	return r.Context().Value(csrfTokenKey).(string)
}
