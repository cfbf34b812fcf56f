// Package session holds the identity of whoever is looking at the site, as recovered from the
// browser's cookies. A Store lives exactly as long as one application start; on the server that
// is one request.
package session

type UserId string

// Session is absent (anonymous) when MaybeUserId is nil
type Session struct {
	MaybeUserId *UserId
}

func Anonymous() Session {
	return Session{MaybeUserId: nil}
}

func Identified(userId UserId) Session {
	return Session{MaybeUserId: &userId}
}

func (s Session) IsPresent() bool {
	return s.MaybeUserId != nil
}

// UserId returns "" for an anonymous session
func (s Session) UserId() UserId {
	if s.MaybeUserId == nil {
		return ""
	}
	return *s.MaybeUserId
}

func (s Session) Equal(other Session) bool {
	if s.MaybeUserId == nil || other.MaybeUserId == nil {
		return s.MaybeUserId == nil && other.MaybeUserId == nil
	}
	return *s.MaybeUserId == *other.MaybeUserId
}

func (s Session) String() string {
	if s.MaybeUserId == nil {
		return "anonymous"
	}
	return string(*s.MaybeUserId)
}
