package account

import (
	"context"
	"errors"
)

type SignInForm struct {
	Email    string
	Password string
}

type SignUpForm struct {
	FullName string
	Email    string
	Password string
}

var ErrSubmitNotWired = errors.New("account forms are not connected to an authentication backend")

// Submitter is where an authentication backend plugs in
type Submitter interface {
	SubmitSignIn(ctx context.Context, form SignInForm) error
	SubmitSignUp(ctx context.Context, form SignUpForm) error
}

type StubSubmitter struct{}

func (StubSubmitter) SubmitSignIn(_ context.Context, _ SignInForm) error {
	return ErrSubmitNotWired
}

func (StubSubmitter) SubmitSignUp(_ context.Context, _ SignUpForm) error {
	return ErrSubmitNotWired
}
