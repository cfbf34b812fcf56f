package session

import (
	"fmt"
	"strings"
	"unicode/utf8"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const EntrySeparator = "; "
const KeyValueSeparator = "="

// UserKey is the only persisted entry the store looks at
const UserKey = "user"

type Entries = orderedmap.OrderedMap[string, string]

type SessionParseError struct {
	Blob   string
	Reason string
}

func (e *SessionParseError) Error() string {
	return fmt.Sprintf("couldn't parse persisted entries (%s): %q", e.Reason, e.Blob)
}

// ParseEntries splits a raw cookie-style blob ("a=1; b=2") into key-value pairs in the order
// they first appear. A repeated key keeps its first position and its last value.
func ParseEntries(blob string) (*Entries, error) {
	entries := orderedmap.New[string, string]()
	if blob == "" {
		return entries, nil
	}
	if !utf8.ValidString(blob) {
		return nil, &SessionParseError{Blob: blob, Reason: "not valid utf-8"}
	}

	for _, entry := range strings.Split(blob, EntrySeparator) {
		key, value, ok := strings.Cut(entry, KeyValueSeparator)
		if !ok {
			return nil, &SessionParseError{
				Blob:   blob,
				Reason: fmt.Sprintf("entry without %q: %q", KeyValueSeparator, entry),
			}
		}
		entries.Set(key, value)
	}
	return entries, nil
}

// SessionFromEntries finds the user entry. An empty user value counts as no session.
func SessionFromEntries(entries *Entries) (Session, bool) {
	value, ok := entries.Get(UserKey)
	if !ok || value == "" {
		return Anonymous(), false
	}
	return Identified(UserId(value)), true
}
