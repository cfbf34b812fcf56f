package account

import "fmt"

type View int

const (
	ViewAnonymousPrompt View = iota
	ViewSignUpForm
	ViewSignInForm
	ViewSummary
	ViewPendingRedirect
)

func (v View) String() string {
	switch v {
	case ViewAnonymousPrompt:
		return "anonymous_prompt"
	case ViewSignUpForm:
		return "signup_form"
	case ViewSignInForm:
		return "signin_form"
	case ViewSummary:
		return "summary"
	case ViewPendingRedirect:
		return "pending_redirect"
	default:
		return fmt.Sprintf("View(%d)", int(v))
	}
}

// Decide picks what the account page shows. Unrecognized actions fall through to the same
// prompt as no action at all, regardless of the session.
func Decide(action Action, sessionPresent bool) View {
	switch {
	case action.IsSignUp() && !sessionPresent:
		return ViewSignUpForm
	case action.IsSignUp() && sessionPresent:
		return ViewPendingRedirect
	case action.IsLogin() && !sessionPresent:
		return ViewSignInForm
	case action.IsLogin() && sessionPresent:
		return ViewPendingRedirect
	case !action.IsSet() && sessionPresent:
		return ViewSummary
	default:
		return ViewAnonymousPrompt
	}
}
