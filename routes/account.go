package routes

import (
	"errors"
	"html/template"
	"net/http"

	"accountsite/account"
	"accountsite/app"
	"accountsite/routes/rutil"
	"accountsite/templates"
	"accountsite/util"
)

// AccountSubmitter receives the sign in and sign up forms. Nothing real is behind it yet.
var AccountSubmitter account.Submitter = account.StubSubmitter{}

const submitNotWiredNotice = "Signing in and creating accounts isn't available yet."

type accountFormResult struct {
	FormId    string
	Action    string
	CSRFField template.HTML
	Notice    string
	FullName  string
	Email     string
}

type accountResult struct {
	Title      string
	Shell      app.Shell
	View       string
	Form       accountFormResult
	LoginPath  string
	SignUpPath string
}

func newAccountResult(r *http.Request, page app.Page, notice string, filled accountFormResult) accountResult {
	form := accountFormResult{
		FormId:    "",
		Action:    r.URL.Path,
		CSRFField: rutil.CSRFField(r),
		Notice:    notice,
		FullName:  filled.FullName,
		Email:     filled.Email,
	}
	title := "Account"
	switch page.AccountView {
	case account.ViewSignInForm:
		form.FormId = "signin_form"
		title = "Login"
	case account.ViewSignUpForm:
		form.FormId = "signup_form"
		title = "Sign Up"
	}

	return accountResult{
		Title:      util.DecorateTitle(title),
		Shell:      page.Shell,
		View:       page.AccountView.String(),
		Form:       form,
		LoginPath:  app.AccountActionPath(account.LoginAction),
		SignUpPath: app.AccountActionPath(account.SignUpAction),
	}
}

func Account_Page(w http.ResponseWriter, r *http.Request) {
	a := rutil.MountApp(r)
	defer a.Close()
	if rutil.RedirectIfNavigated(w, r, a) {
		return
	}

	page := a.Render()
	// chi matches the escaped path, so /account/a%2Fb lands here while the decoded path has an
	// extra segment
	if page.Route.Name != app.RouteAccount {
		Misc_NotFound(w, r)
		return
	}
	if page.Route.Action.IsSet() && !page.Route.Action.IsRecognized() {
		rutil.Logger(r).Info().Msgf("Unrecognized account action: %s", page.Route.Action.Raw())
	}
	templates.MustWrite(w, "account/page", newAccountResult(r, page, "", accountFormResult{}))
}

func Account_SignIn(w http.ResponseWriter, r *http.Request) {
	a := rutil.MountApp(r)
	defer a.Close()
	if rutil.RedirectIfNavigated(w, r, a) {
		return
	}

	if err := r.ParseForm(); err != nil {
		panic(util.HttpError{Status: http.StatusBadRequest, Inner: err})
	}
	form := account.SignInForm{
		Email:    util.EnsureParam(r, "email"),
		Password: util.EnsureParam(r, "password"),
	}

	err := AccountSubmitter.SubmitSignIn(r.Context(), form)
	notice := submitNotice(r, err)
	templates.MustWrite(w, "account/page", newAccountResult(r, a.Render(), notice, accountFormResult{
		Email: form.Email,
	}))
}

func Account_SignUp(w http.ResponseWriter, r *http.Request) {
	a := rutil.MountApp(r)
	defer a.Close()
	if rutil.RedirectIfNavigated(w, r, a) {
		return
	}

	if err := r.ParseForm(); err != nil {
		panic(util.HttpError{Status: http.StatusBadRequest, Inner: err})
	}
	form := account.SignUpForm{
		FullName: util.EnsureParam(r, "fullName"),
		Email:    util.EnsureParam(r, "email"),
		Password: util.EnsureParam(r, "password"),
	}

	err := AccountSubmitter.SubmitSignUp(r.Context(), form)
	notice := submitNotice(r, err)
	templates.MustWrite(w, "account/page", newAccountResult(r, a.Render(), notice, accountFormResult{
		FullName: form.FullName,
		Email:    form.Email,
	}))
}

func submitNotice(r *http.Request, err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, account.ErrSubmitNotWired):
		rutil.Logger(r).Info().Msg("Account form submitted with no backend")
		return submitNotWiredNotice
	default:
		panic(err)
	}
}
