package routes

import (
	"net/http"

	"accountsite/app"
	"accountsite/routes/rutil"
	"accountsite/templates"
	"accountsite/util"
)

type miscResult struct {
	Title string
	Shell app.Shell
}

func Misc_Home(w http.ResponseWriter, r *http.Request) {
	a := rutil.MountApp(r)
	defer a.Close()

	page := a.Render()
	templates.MustWrite(w, "misc/home", miscResult{
		Title: util.DecorateTitle(""),
		Shell: page.Shell,
	})
}

func Misc_About(w http.ResponseWriter, r *http.Request) {
	a := rutil.MountApp(r)
	defer a.Close()

	page := a.Render()
	templates.MustWrite(w, "misc/about", miscResult{
		Title: util.DecorateTitle("About"),
		Shell: page.Shell,
	})
}

func Misc_NotFound(w http.ResponseWriter, r *http.Request) {
	a := rutil.MountApp(r)
	defer a.Close()

	page := a.Render()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	templates.MustWrite(w, "misc/404", miscResult{
		Title: util.DecorateTitle("Page not found"),
		Shell: page.Shell,
	})
}
