//go:build e2etesting

package e2etest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

const devRoot = "http://localhost:3000"

func mustLaunch(t *testing.T) *rod.Browser {
	l := launcher.New().Headless(true)
	t.Cleanup(l.Cleanup)
	browserUrl := l.MustLaunch()

	browser := rod.New().ControlURL(browserUrl).MustConnect()
	t.Cleanup(browser.MustClose)
	return browser
}

func visitDev(browser *rod.Browser, path string) *rod.Page {
	page := browser.MustPage(devRoot + path)
	page.MustWaitLoad()
	return page
}

func visitDevf(browser *rod.Browser, format string, args ...any) *rod.Page {
	return visitDev(browser, fmt.Sprintf(format, args...))
}

// setCookies replaces whatever the page can see in document.cookie with the given entries
func setCookies(page *rod.Page, entries ...string) {
	page.MustEval(`() => {
		for (const entry of document.cookie.split("; ")) {
			const key = entry.split("=")[0];
			if (key) {
				document.cookie = key + "=; expires=Thu, 01 Jan 1970 00:00:00 GMT; path=/";
			}
		}
	}`)
	for _, entry := range entries {
		page.MustEval(`(entry) => { document.cookie = entry + "; path=/"; }`, entry)
	}
}

func mustPath(page *rod.Page) string {
	url := page.MustInfo().URL
	path := strings.TrimPrefix(url, devRoot)
	if path == "" {
		return "/"
	}
	return path
}

func navTexts(page *rod.Page, selector string) []string {
	var result []string
	for _, link := range page.MustElements(selector + " a") {
		result = append(result, link.MustText())
	}
	return result
}
