package routes

import (
	"net/http"

	"accountsite/account"
	"accountsite/app"
	"accountsite/config"
	asmiddleware "accountsite/middleware"
	"accountsite/util"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(asmiddleware.Logger)
	r.Use(middleware.Compress(config.Cfg.CompressLevel))
	r.Use(asmiddleware.Recoverer)
	r.Use(asmiddleware.DefaultHeaders)
	r.Use(asmiddleware.RedirectHttpToHttps)
	r.Use(middleware.GetHead)
	r.Use(asmiddleware.RedirectSlashes(util.StaticUrlPrefix))
	r.Use(asmiddleware.Session)
	r.Use(asmiddleware.CSRF)

	r.Get(app.HomePath, Misc_Home)
	r.Get(app.AboutPath, Misc_About)
	r.Get(app.AccountPath, Account_Page)
	r.Get(app.AccountActionPattern, Account_Page)
	r.Post(app.AccountActionPath(account.LoginAction), Account_SignIn)
	r.Post(app.AccountActionPath(account.SignUpAction), Account_SignUp)
	r.Get(util.StaticRouteTemplate, Static_File)
	r.NotFound(Misc_NotFound)

	return r
}
