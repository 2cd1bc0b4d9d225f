package web

import (
	"bytes"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesParse(t *testing.T) {
	tmpl, err := Templates(Funcs(FuncOptions{SiteName: "GCMS"}))
	require.NoError(t, err)

	pages := []string{
		"home.html", "about.html", "departments.html", "department_detail.html",
		"events.html", "event_detail.html", "facilities.html", "library.html",
		"book_detail.html", "admission.html", "apply_online.html", "examination.html",
		"contact.html", "news.html", "news_detail.html", "gallery.html",
		"courses.html", "course_detail.html", "404.html", "500.html",
	}
	for _, name := range pages {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestNotFoundPageRenders(t *testing.T) {
	tmpl, err := Templates(Funcs(FuncOptions{SiteName: "GCMS"}))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "404.html", map[string]interface{}{
		"Title":  "Page Not Found",
		"Active": "",
	}))
	assert.Contains(t, buf.String(), "<title>Page Not Found | GCMS</title>")
}

func TestFuncs(t *testing.T) {
	loc := time.FixedZone("PKT", 5*3600)
	funcs := Funcs(FuncOptions{Location: loc})

	date := funcs["date"].(func(time.Time, ...string) string)
	assert.Equal(t, "March 2, 2025", date(time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-03-02", date(time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC), "2006-01-02"))
	assert.Empty(t, date(time.Time{}))

	truncate := funcs["truncate"].(func(string, int) string)
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "a long...", truncate("a long sentence", 7))

	media := funcs["media"].(func(string) string)
	assert.Equal(t, "/media/news/a.jpg", media("/news/a.jpg"))

	dict := funcs["dict"].(func(...interface{}) (map[string]interface{}, error))
	m, err := dict("Name", "email", "Errors", nil)
	require.NoError(t, err)
	assert.Equal(t, "email", m["Name"])
	_, err = dict("odd")
	assert.Error(t, err)
}

func TestStaticServesStylesheet(t *testing.T) {
	f, err := Static().Open("/css/site.css")
	require.NoError(t, err)
	defer f.Close()

	info, err := f.Stat()
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	var _ http.File = f
}
