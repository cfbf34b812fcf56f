package app

import (
	"strings"

	"accountsite/account"
)

type RouteName int

const (
	RouteNotFound RouteName = iota
	RouteHome
	RouteAbout
	RouteAccount
)

func (n RouteName) String() string {
	switch n {
	case RouteHome:
		return "home"
	case RouteAbout:
		return "about"
	case RouteAccount:
		return "account"
	default:
		return "not_found"
	}
}

const HomePath = "/"
const AboutPath = "/about"
const AccountPath = account.Path
const AccountActionParam = "accountAction"

// Patterns in chi syntax, in the order they are registered
const AccountActionPattern = AccountPath + "/{" + AccountActionParam + "}"

func AccountActionPath(action string) string {
	return AccountPath + "/" + action
}

type Route struct {
	Name   RouteName
	Action account.Action
}

// Resolve maps a URL path to the route that renders it. A single trailing slash is ignored.
func Resolve(path string) Route {
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	switch path {
	case HomePath:
		return Route{Name: RouteHome, Action: account.NoAction}
	case AboutPath:
		return Route{Name: RouteAbout, Action: account.NoAction}
	case AccountPath:
		return Route{Name: RouteAccount, Action: account.NoAction}
	}

	if segment, ok := strings.CutPrefix(path, AccountPath+"/"); ok &&
		segment != "" && !strings.Contains(segment, "/") {
		return Route{Name: RouteAccount, Action: account.NewAction(segment)}
	}

	return Route{Name: RouteNotFound, Action: account.NoAction}
}
