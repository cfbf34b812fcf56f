package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"accountsite/app"
	"accountsite/log"
	"accountsite/oops"
	"accountsite/session"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var Render *cobra.Command

func init() {
	var cookie string
	var asJson bool

	Render = &cobra.Command{
		Use:   "render [path]",
		Short: "Show what a visitor with the given cookies sees at path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.HomePath
			if len(args) > 0 {
				path = args[0]
			}
			logger := &log.TaskLogger{TaskName: "render"}
			return RenderPath(cmd.Context(), logger, path, cookie, asJson, cmd.OutOrStdout())
		},
	}
	Render.Flags().StringVar(&cookie, "cookie", "", "raw cookie string, e.g. \"theme=dark; user=alice\"")
	Render.Flags().BoolVar(&asJson, "json", false, "print JSON instead of text")
}

type linkJson struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

type pageJson struct {
	Location     string     `json:"location"`
	Route        string     `json:"route"`
	Action       string     `json:"action,omitempty"`
	SessionState string     `json:"session_state"`
	MaybeUserId  *string    `json:"user_id"`
	Left         []linkJson `json:"left"`
	Right        []linkJson `json:"right"`
	AccountView  string     `json:"account_view,omitempty"`
}

type renderJson struct {
	Before      pageJson `json:"before"`
	Navigations []string `json:"navigations"`
	After       pageJson `json:"after"`
}

// RenderPath mounts the app at path and renders it twice: before the session is initialized
// and after. Navigations in between are listed too.
func RenderPath(
	ctx context.Context, logger log.Logger, path string, cookie string, asJson bool, out io.Writer,
) error {
	if ctx == nil {
		ctx = context.Background()
	}
	store := session.NewStore(logger)
	a := app.New(store, path)
	defer a.Close()

	before := a.Render()
	store.Start(ctx, session.StaticReader(cookie))
	if err := store.WaitResolved(ctx); err != nil {
		return err
	}
	after := a.Render()
	navigations := a.Navigations()
	if navigations == nil {
		navigations = []string{}
	}

	if asJson {
		result := renderJson{
			Before:      newPageJson(before),
			Navigations: navigations,
			After:       newPageJson(after),
		}
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return oops.Wrap(encoder.Encode(result))
	}

	var b strings.Builder
	writePageText(&b, "before", before)
	for _, navigation := range navigations {
		fmt.Fprintf(&b, "navigated to %s\n", navigation)
	}
	writePageText(&b, "after", after)
	_, err := io.WriteString(out, b.String())
	return oops.Wrap(err)
}

func newPageJson(page app.Page) pageJson {
	result := pageJson{
		Location:     page.Location,
		Route:        page.Route.Name.String(),
		Action:       page.Route.Action.Raw(),
		SessionState: page.SessionState.String(),
		MaybeUserId:  nil,
		Left:         newLinksJson(page.Shell.Left),
		Right:        newLinksJson(page.Shell.Right),
		AccountView:  "",
	}
	if page.Session.IsPresent() {
		userId := string(page.Session.UserId())
		result.MaybeUserId = &userId
	}
	if page.Route.Name == app.RouteAccount {
		result.AccountView = page.AccountView.String()
	}
	return result
}

func newLinksJson(links []app.Link) []linkJson {
	result := make([]linkJson, 0, len(links))
	for _, link := range links {
		result = append(result, linkJson{Label: link.Label, Path: link.Path})
	}
	return result
}

func writePageText(b *strings.Builder, label string, page app.Page) {
	fmt.Fprintf(b, "%s: %s (%s, session %s, %s)\n",
		label, page.Location, page.Route.Name, page.SessionState, page.Session)
	fmt.Fprintf(b, "  left:  %s\n", linksText(page.Shell.Left))
	fmt.Fprintf(b, "  right: %s\n", linksText(page.Shell.Right))
	if page.Route.Name == app.RouteAccount {
		fmt.Fprintf(b, "  account: %s\n", page.AccountView)
	}
}

func linksText(links []app.Link) string {
	parts := make([]string, 0, len(links))
	for _, link := range links {
		parts = append(parts, fmt.Sprintf("%s %s", link.Label, link.Path))
	}
	return strings.Join(parts, ", ")
}
