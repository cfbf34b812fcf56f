package rutil

import (
	"fmt"
	"html/template"
	"net/http"

	"accountsite/log"
	"accountsite/middleware"
	"accountsite/session"
)

// This file wraps calls to the middleware package so that the routes don't have to reference it

func CSRFField(r *http.Request) template.HTML {
	return template.HTML(fmt.Sprintf(
		"<input type=\"hidden\" name=\"%s\" value=\"%s\">", middleware.CSRFFormKey, middleware.GetCSRFToken(r),
	))
}

func Logger(r *http.Request) log.Logger {
	return middleware.GetLogger(r)
}

func SessionStore(r *http.Request) *session.Store {
	return middleware.GetSessionStore(r)
}

func WaitSession(r *http.Request) session.Session {
	return middleware.WaitSession(r)
}
