package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadHeader(t *testing.T, name, content string) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["file"][0]
}

func TestSaveAndDelete(t *testing.T) {
	root := t.TempDir()
	ls, err := NewLocalStorage(root, "/media/")
	require.NoError(t, err)

	stored, err := ls.SaveFileWithPath(uploadHeader(t, "Poster.JPG", "img"), "news")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stored, "news/"))
	assert.True(t, strings.HasSuffix(stored, ".jpg"))
	assert.Equal(t, "/media/"+stored, ls.URL(stored))

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(stored)))
	require.NoError(t, err)
	assert.Equal(t, "img", string(data))

	require.NoError(t, ls.DeleteFile(stored))
	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(stored)))
	assert.True(t, os.IsNotExist(err))

	// deleting twice is fine
	assert.NoError(t, ls.DeleteFile(stored))
}

func TestRejectsEscapingPaths(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir(), "/media")
	require.NoError(t, err)

	_, err = ls.SaveFileWithPath(uploadHeader(t, "x.txt", "x"), "../etc")
	assert.ErrorIs(t, err, ErrInvalidPath)

	_, err = ls.GetFullPath("news/../../secret")
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestURL(t *testing.T) {
	ls := &LocalStorage{baseURL: "/media"}
	assert.Equal(t, "", ls.URL(""))
	assert.Equal(t, "/media/departments/default.png", ls.URL("departments/default.png"))
	assert.Equal(t, "https://cdn.example.com/a.png", ls.URL("https://cdn.example.com/a.png"))
}
