package util

import (
	"errors"
	"fmt"
)

// HttpError is panicked by handlers that want a specific status, Recoverer picks it up
type HttpError struct {
	Status int
	Inner  error
}

func (e HttpError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Inner.Error())
}

func (e HttpError) Unwrap() error {
	return e.Inner
}

func HttpPanic(status int, text string) {
	panic(HttpError{
		Status: status,
		Inner:  errors.New(text),
	})
}
