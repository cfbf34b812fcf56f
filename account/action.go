package account

// Action is the path segment after /account/. Only login and signup mean anything; everything
// else is carried around as-is so that it can be logged, but behaves like no action.
type Action struct {
	raw   string
	isSet bool
}

const (
	LoginAction  = "login"
	SignUpAction = "signup"
)

var NoAction = Action{raw: "", isSet: false}

func NewAction(raw string) Action {
	if raw == "" {
		return NoAction
	}
	return Action{raw: raw, isSet: true}
}

func (a Action) IsSet() bool {
	return a.isSet
}

func (a Action) Raw() string {
	return a.raw
}

func (a Action) IsLogin() bool {
	return a.isSet && a.raw == LoginAction
}

func (a Action) IsSignUp() bool {
	return a.isSet && a.raw == SignUpAction
}

func (a Action) IsRecognized() bool {
	return a.IsLogin() || a.IsSignUp()
}
