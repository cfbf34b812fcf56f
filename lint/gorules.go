// Run `golangci-lint cache clean` after modifying this file.

package gorules

import (
	"github.com/quasilyte/go-ruleguard/dsl"
)

func redirects(m dsl.Matcher) {
	m.Match(`http.Redirect($*_)`).
		Where(
			!m.File().PkgPath.Matches(`accountsite/routes/rutil`) &&
				!m.File().PkgPath.Matches(`accountsite/middleware`)).
		Report(`page navigations go through rutil.RedirectIfNavigated`)
}

func stackErrors(m dsl.Matcher) {
	m.Import(`github.com/pkg/errors`)
	m.Match(`errors.WithStack($*_)`, `errors.Wrap($*_)`, `errors.Wrapf($*_)`).
		Where(!m.File().PkgPath.Matches(`accountsite/oops`)).
		Report(`use oops.Wrap/oops.Wrapf so the error is wrapped once`)
}

func baseLogger(m dsl.Matcher) {
	m.Match(`log.Base`).
		Where(
			!m.File().PkgPath.Matches(`accountsite/log`) &&
				!m.File().PkgPath.Matches(`accountsite/middleware`)).
		Report(`references to log.Base are only allowed in log and middleware, use log.Logger instead`)
}
