package templates

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"net/http"

	"accountsite/util"
)

//go:embed */*.gohtml
var templateFS embed.FS
var Templates *template.Template

func init() {
	funcMap := template.FuncMap{
		"static": util.StaticHashedPath,
	}
	var err error
	Templates, err = template.New("root").Funcs(funcMap).ParseFS(templateFS, "*/*.gohtml")
	if err != nil {
		panic(err)
	}
}

// Templates are named after their path without the extension, e.g. "account/signin"
func Write(w io.Writer, name string, data any) error {
	return Templates.ExecuteTemplate(w, name, data)
}

// MustWrite renders into a buffer first so that a failing template doesn't leave half a page
func MustWrite(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := Write(&buf, name, data); err != nil {
		panic(err)
	}

	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
	}
	if _, err := buf.WriteTo(w); err != nil {
		panic(err)
	}
}
