package middleware

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"accountsite/log"
	"accountsite/oops"
	"accountsite/session"
	"accountsite/util"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/mileusna/useragent"
	"github.com/rs/zerolog"
)

var formFilter *regexp.Regexp

func init() {
	formFilter = regexp.MustCompile("(passw|secret|token|_key|crypt|salt|certificate|otp|ssn)")
}

// Logger should come before Recoverer
func Logger(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		t1 := time.Now()

		path := r.URL.Path
		if r.URL.RawQuery != "" {
			path += "?" + r.URL.RawQuery
		}

		type FormKV struct {
			Key   string
			Value any
		}

		var formErr error
		var formKVs []FormKV
		if err := r.ParseForm(); err != nil {
			formErr = err
		} else if len(r.PostForm) != 0 {
			var keys []string
			for key := range r.PostForm {
				keys = append(keys, key)
			}
			slices.Sort(keys)

			for _, key := range keys {
				values := r.PostForm[key]

				var kv FormKV
				switch {
				case formFilter.MatchString(key):
					kv = FormKV{key, "*******"}
				case len(values) == 1:
					kv = FormKV{key, values[0]}
				default:
					arr := zerolog.Arr()
					for _, value := range values {
						arr.Str(value)
					}
					kv = FormKV{key, arr}
				}
				formKVs = append(formKVs, kv)
			}
		}

		commonFields := func(event *zerolog.Event) {
			event.
				Str("method", r.Method).
				Str("path", path)
			if formErr != nil {
				event.Str("form_err", formErr.Error())
			}
			if len(formKVs) > 0 {
				formDict := zerolog.Dict()
				for _, kv := range formKVs {
					formDict.Any(kv.Key, kv.Value)
				}
				event.Dict("form", formDict)
			}
			cookies := r.Cookies()
			if len(cookies) > 0 {
				cookiesDict := zerolog.Dict()
				for _, cookie := range cookies {
					if cookie.Name == csrfCookieName {
						cookiesDict.Bool(cookie.Name, true)
					} else {
						cookiesDict.Str(cookie.Name, cookie.Value)
					}
				}
				event.Dict("cookies", cookiesDict)
			}
		}

		requestId := r.Header.Get("X-Request-ID")
		if requestId == "" {
			requestId = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestId)
		logger := &WebLogger{
			mu:          sync.Mutex{},
			MaybeUserId: nil, // To be set once the session is resolved
			RequestId:   requestId,
		}

		isStaticFile := strings.HasPrefix(r.URL.Path, util.StaticUrlPrefix)
		if !isStaticFile {
			userAgent := useragent.Parse(r.UserAgent())
			browser := userAgent.Name
			if userAgent.Bot {
				browser = "Crawler"
			}
			logger.
				Info().
				Func(commonFields).
				Str("ip", util.UserIp(r)).
				Str("referrer", r.Referer()).
				Str("user-agent", r.UserAgent()).
				Str("browser", browser).
				Msg("started")
		}

		var errorWrapper errorWrapper
		r = withLogger(withErrorWrapper(r, &errorWrapper), logger)

		defer func() {
			status := ww.Status()
			isCsrfError := errorWrapper.err != nil && errors.Is(errorWrapper.err, csrfValidationFailed)
			if (status/100 == 4 || status/100 == 5) &&
				status != http.StatusMethodNotAllowed &&
				status != http.StatusNotFound &&
				!isCsrfError {

				event := logger.
					Error().
					Func(commonFields)
				if errorWrapper.err != nil {
					event.Err(errorWrapper.err)
				}
				event.
					Int("status", status).
					TimeDiff("duration", time.Now(), t1).
					Msg("failed")
			} else if !isStaticFile {
				event := logger.
					Info().
					Func(commonFields).
					Int("status", status).
					TimeDiff("duration", time.Now(), t1)
				if isCsrfError {
					event = event.Str("omitted_error", csrfValidationFailed.Error())
				}
				event.Msg("completed")
			}
		}()
		next.ServeHTTP(ww, r)
	}
	return http.HandlerFunc(fn)
}

type errorWrapperKeyType struct{}

var errorWrapperKey = &errorWrapperKeyType{}

type errorWrapper struct {
	err *oops.Error
}

func withErrorWrapper(r *http.Request, errorWrapper *errorWrapper) *http.Request {
	r = r.WithContext(context.WithValue(r.Context(), errorWrapperKey, errorWrapper))
	return r
}

func setError(r *http.Request, error *oops.Error) {
	errorWrapper, _ := r.Context().Value(errorWrapperKey).(*errorWrapper)
	if errorWrapper == nil {
		return
	}
	errorWrapper.err = error
}

type loggerKeyType struct{}

var loggerKey = &loggerKeyType{}

func withLogger(r *http.Request, logger *WebLogger) *http.Request {
	r = r.WithContext(context.WithValue(r.Context(), loggerKey, logger))
	return r
}

// GetLogger falls back to the base logger for handlers mounted without the Logger middleware
func GetLogger(r *http.Request) log.Logger {
	if logger, ok := r.Context().Value(loggerKey).(*WebLogger); ok {
		return logger
	}
	return log.BaseLogger{}
}

func setLoggerUserId(r *http.Request, maybeUserId *session.UserId) {
	if logger, ok := r.Context().Value(loggerKey).(*WebLogger); ok {
		logger.mu.Lock()
		logger.MaybeUserId = maybeUserId
		logger.mu.Unlock()
	}
}

// WebLogger is shared with the session initialization goroutine, hence the lock
type WebLogger struct {
	mu          sync.Mutex
	MaybeUserId *session.UserId
	RequestId   string
}

func (l *WebLogger) Info() *zerolog.Event {
	event := log.Base.Info()
	event = l.logWebCommon(event)
	return event
}

func (l *WebLogger) Warn() *zerolog.Event {
	event := log.Base.Warn()
	event = l.logWebCommon(event)
	return event
}

func (l *WebLogger) Error() *zerolog.Event {
	event := log.Base.Error()
	event = l.logWebCommon(event)
	return event
}

func (l *WebLogger) logWebCommon(event *zerolog.Event) *zerolog.Event {
	event = event.Timestamp()
	l.mu.Lock()
	maybeUserId := l.MaybeUserId
	l.mu.Unlock()
	if maybeUserId != nil {
		event = event.Str("user_id", string(*maybeUserId))
	}
	event = event.Str("request_id", l.RequestId)
	return event
}
