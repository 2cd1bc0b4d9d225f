// Package web embeds the HTML templates and static assets of the site.
package web

import (
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"
)

//go:embed templates/*.html templates/partials/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// DateLayout is the default layout of the date template func.
const DateLayout = "January 2, 2006"

// FuncOptions feeds the template functions.
type FuncOptions struct {
	SiteName string
	Location *time.Location
	MediaURL func(path string) string
}

// Funcs returns the functions available in every template.
func Funcs(opts FuncOptions) template.FuncMap {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	media := opts.MediaURL
	if media == nil {
		media = func(p string) string { return "/media/" + strings.TrimPrefix(p, "/") }
	}

	return template.FuncMap{
		"siteName": func() string { return opts.SiteName },
		"media":    media,
		"year":     func() int { return time.Now().In(loc).Year() },
		"date": func(t time.Time, layout ...string) string {
			if t.IsZero() {
				return ""
			}
			l := DateLayout
			if len(layout) > 0 {
				l = layout[0]
			}
			return t.In(loc).Format(l)
		},
		"truncate": func(s string, n int) string {
			if utf8.RuneCountInString(s) <= n {
				return s
			}
			r := []rune(s)
			return strings.TrimSpace(string(r[:n])) + "..."
		},
		"fieldError": func(errs map[string]string, field string) string {
			return errs[field]
		},
		"dict": func(pairs ...interface{}) (map[string]interface{}, error) {
			if len(pairs)%2 != 0 {
				return nil, errors.New("dict needs key/value pairs")
			}
			m := make(map[string]interface{}, len(pairs)/2)
			for i := 0; i < len(pairs); i += 2 {
				key, ok := pairs[i].(string)
				if !ok {
					return nil, errors.New("dict keys must be strings")
				}
				m[key] = pairs[i+1]
			}
			return m, nil
		},
	}
}

// Templates parses every page and partial. Pages are addressed by file name,
// e.g. "home.html".
func Templates(funcs template.FuncMap) (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html", "templates/partials/*.html")
}

// Static serves the embedded static directory.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
