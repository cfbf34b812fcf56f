package session

import (
	"context"
	"net/http"
	"strings"
)

// Reader gives read-only access to whatever the client persisted, as one raw blob
type Reader interface {
	ReadPersisted(ctx context.Context) (string, error)
}

type StaticReader string

func (r StaticReader) ReadPersisted(_ context.Context) (string, error) {
	return string(r), nil
}

// RequestReader reads the Cookie headers the browser sent along with a request. Browsers send
// a single header, HTTP/2 clients may split it; either way the result is "; "-joined.
type RequestReader struct {
	Request *http.Request
}

func (r RequestReader) ReadPersisted(_ context.Context) (string, error) {
	return strings.Join(r.Request.Header.Values("Cookie"), EntrySeparator), nil
}

type ReaderFunc func(ctx context.Context) (string, error)

func (f ReaderFunc) ReadPersisted(ctx context.Context) (string, error) {
	return f(ctx)
}
