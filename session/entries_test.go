package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEntries(t *testing.T) {
	type Test struct {
		Description  string
		Blob         string
		ExpectedKeys []string
		ExpectedUser string
		ExpectedOk   bool
	}
	tests := []Test{
		{
			Description:  "empty blob",
			Blob:         "",
			ExpectedKeys: nil,
			ExpectedUser: "",
			ExpectedOk:   false,
		},
		{
			Description:  "only user",
			Blob:         "user=alice",
			ExpectedKeys: []string{"user"},
			ExpectedUser: "alice",
			ExpectedOk:   true,
		},
		{
			Description:  "user after other entries",
			Blob:         "theme=dark; user=alice",
			ExpectedKeys: []string{"theme", "user"},
			ExpectedUser: "alice",
			ExpectedOk:   true,
		},
		{
			Description:  "no user",
			Blob:         "theme=dark; lang=en",
			ExpectedKeys: []string{"theme", "lang"},
			ExpectedUser: "",
			ExpectedOk:   false,
		},
		{
			Description:  "empty user value",
			Blob:         "user=; theme=dark",
			ExpectedKeys: []string{"user", "theme"},
			ExpectedUser: "",
			ExpectedOk:   false,
		},
		{
			Description:  "value keeps extra equals signs",
			Blob:         "user=a=b",
			ExpectedKeys: []string{"user"},
			ExpectedUser: "a=b",
			ExpectedOk:   true,
		},
		{
			Description:  "repeated key keeps first position and last value",
			Blob:         "user=alice; theme=dark; user=bob",
			ExpectedKeys: []string{"user", "theme"},
			ExpectedUser: "bob",
			ExpectedOk:   true,
		},
		{
			Description:  "key is case sensitive",
			Blob:         "User=alice",
			ExpectedKeys: []string{"User"},
			ExpectedUser: "",
			ExpectedOk:   false,
		},
	}

	for _, tc := range tests {
		entries, err := ParseEntries(tc.Blob)
		require.NoError(t, err, tc.Description)

		var keys []string
		for pair := entries.Oldest(); pair != nil; pair = pair.Next() {
			keys = append(keys, pair.Key)
		}
		require.Equal(t, tc.ExpectedKeys, keys, tc.Description)

		session, ok := SessionFromEntries(entries)
		require.Equal(t, tc.ExpectedOk, ok, tc.Description)
		require.Equal(t, UserId(tc.ExpectedUser), session.UserId(), tc.Description)
		require.Equal(t, tc.ExpectedOk, session.IsPresent(), tc.Description)
	}
}

func TestParseEntriesMalformed(t *testing.T) {
	blobs := []string{
		"user",
		"theme=dark; user",
		"theme=dark;user=alice; nonsense",
		"user=\xff\xfe",
		"\x80garbage",
	}

	for _, blob := range blobs {
		entries, err := ParseEntries(blob)
		require.Nil(t, entries, blob)
		var parseErr *SessionParseError
		require.ErrorAs(t, err, &parseErr, blob)
		require.Equal(t, blob, parseErr.Blob)
	}
}
