package middlewares

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type uploadPart struct {
	filename    string
	contentType string
	data        []byte
}

func multipartBody(t *testing.T, parts []uploadPart) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for _, p := range parts {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", `form-data; name="images"; filename="`+p.filename+`"`)
		h.Set("Content-Type", p.contentType)
		fw, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = fw.Write(p.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func uploadTestRouter(t *testing.T, maxCount int) *gin.Engine {
	t.Helper()

	// saves land under uploads/ relative to the working directory
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	require.NoError(t, os.MkdirAll(filepath.Join("uploads", "properties"), 0o755))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/upload", ImageUpload("properties", maxCount), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"urls": UploadedImageURLs(c)})
	})
	return r
}

func postUpload(r *gin.Engine, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestImageUpload_NonMultipartPassesThrough(t *testing.T) {
	r := uploadTestRouter(t, 2)

	w := postUpload(r, bytes.NewBufferString(`{"title":"x"}`), "application/json")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"urls":null`)
}

func TestImageUpload_NoFilesPassesThrough(t *testing.T) {
	r := uploadTestRouter(t, 2)

	body, ct := multipartBody(t, nil)
	w := postUpload(r, body, ct)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"urls":null`)
}

func TestImageUpload_SavesFilesAndSetsURLs(t *testing.T) {
	r := uploadTestRouter(t, 2)

	body, ct := multipartBody(t, []uploadPart{
		{"a.png", "image/png", []byte("png-bytes")},
		{"b.jpg", "image/jpeg", []byte("jpg-bytes")},
	})
	w := postUpload(r, body, ct)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, strings.Count(w.Body.String(), "/uploads/properties/"))

	entries, err := os.ReadDir(filepath.Join("uploads", "properties"))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestImageUpload_TooManyFiles(t *testing.T) {
	r := uploadTestRouter(t, 2)

	body, ct := multipartBody(t, []uploadPart{
		{"a.png", "image/png", []byte("x")},
		{"b.png", "image/png", []byte("x")},
		{"c.png", "image/png", []byte("x")},
	})
	w := postUpload(r, body, ct)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "At most 2 images allowed")
}

func TestImageUpload_RejectsNonImage(t *testing.T) {
	r := uploadTestRouter(t, 2)

	body, ct := multipartBody(t, []uploadPart{
		{"notes.txt", "text/plain", []byte("plain text")},
	})
	w := postUpload(r, body, ct)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "upload only images")

	entries, err := os.ReadDir(filepath.Join("uploads", "properties"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestImageUpload_RejectsOversizedFile(t *testing.T) {
	r := uploadTestRouter(t, 2)

	body, ct := multipartBody(t, []uploadPart{
		{"huge.png", "image/png", bytes.Repeat([]byte("a"), maxImageSize+1)},
	})
	w := postUpload(r, body, ct)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "10MB limit")
}
