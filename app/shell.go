package app

import (
	"accountsite/account"
	"accountsite/session"
)

type Link struct {
	Path  string
	Label string
}

// Shell is the pair of link bars around every page
type Shell struct {
	Left  []Link
	Right []Link
}

func NavShell(s session.Session) Shell {
	left := []Link{
		{Path: HomePath, Label: "Home"},
		{Path: AboutPath, Label: "About"},
	}
	if !s.IsPresent() {
		left = append(left, Link{Path: AccountActionPath(account.SignUpAction), Label: "Sign Up"})
	}

	var right []Link
	if s.IsPresent() {
		right = []Link{{Path: AccountPath, Label: "Account"}}
	} else {
		right = []Link{{Path: AccountActionPath(account.LoginAction), Label: "Login"}}
	}

	return Shell{Left: left, Right: right}
}
