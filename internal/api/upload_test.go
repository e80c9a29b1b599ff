package api

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/sunr3d/fshare/internal/config"
	"github.com/sunr3d/fshare/internal/infra/localfs"
	"github.com/sunr3d/fshare/internal/services/upload_service"
	"github.com/sunr3d/fshare/models"
)

func setupTestAPI(t *testing.T, maxSize int64) (*UploadAPI, *http.ServeMux) {
	logger := zaptest.NewLogger(t)
	dir := t.TempDir()

	cfg := &config.Config{
		UploadDir:            dir,
		MaxUploadSize:        maxSize,
		MaxConcurrentUploads: 2,
	}

	storage, err := localfs.New(logger, dir)
	require.NoError(t, err)

	h := New(upload_service.New(logger, cfg, storage), logger, cfg)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.Index)
	mux.HandleFunc("POST /{$}", h.Upload)
	mux.HandleFunc("GET /share/{link}", h.Download)
	mux.HandleFunc("GET /files", h.ListFiles)
	mux.HandleFunc("GET /health", h.Health)

	return h, mux
}

func multipartBody(t *testing.T, files ...string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for i := 0; i+1 < len(files); i += 2 {
		part, err := mw.CreateFormFile("file", files[i])
		require.NoError(t, err)
		_, err = part.Write([]byte(files[i+1]))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func upload(t *testing.T, mux http.Handler, accept string, files ...string) *httptest.ResponseRecorder {
	body, contentType := multipartBody(t, files...)
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", contentType)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestIndex(t *testing.T) {
	_, mux := setupTestAPI(t, 1000)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), `enctype="multipart/form-data"`)
	assert.Contains(t, rec.Body.String(), "1.0 kB")
}

func TestUpload_JSON(t *testing.T) {
	_, mux := setupTestAPI(t, 1000)

	rec := upload(t, mux, "application/json", "a.txt", "hello", "b.txt", "world")

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp uploadResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Link)
	assert.Equal(t, "/share/"+resp.Link, resp.URL)
	assert.Equal(t, resp.Link, rec.Header().Get(LinkHeader))
}

func TestUpload_Redirect(t *testing.T) {
	_, mux := setupTestAPI(t, 1000)

	rec := upload(t, mux, "", "a.txt", "hello")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/files", rec.Header().Get("Location"))
	assert.NotEmpty(t, rec.Header().Get(LinkHeader))
}

func TestUpload_TooBig(t *testing.T) {
	_, mux := setupTestAPI(t, 10)

	rec := upload(t, mux, "application/json", "big.bin", string(bytes.Repeat([]byte("x"), 50)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Empty(t, rec.Header().Get(LinkHeader))
}

func TestUpload_Empty(t *testing.T) {
	_, mux := setupTestAPI(t, 1000)

	rec := upload(t, mux, "application/json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpload_NotMultipart(t *testing.T) {
	_, mux := setupTestAPI(t, 1000)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString("plain"))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDownload_RoundTrip(t *testing.T) {
	_, mux := setupTestAPI(t, 1000)

	rec := upload(t, mux, "application/json", "a.txt", "hello", "b.txt", "world")
	require.Equal(t, http.StatusCreated, rec.Code)
	link := rec.Header().Get(LinkHeader)

	for _, path := range []string{"/share/" + link, "/share/" + link + ".zip"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/zip", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Header().Get("Content-Disposition"), link+".zip")

			zr, err := zip.NewReader(bytes.NewReader(rec.Body.Bytes()), int64(rec.Body.Len()))
			require.NoError(t, err)
			require.Len(t, zr.File, 2)

			got := map[string]string{}
			for _, f := range zr.File {
				rc, err := f.Open()
				require.NoError(t, err)
				data, err := io.ReadAll(rc)
				require.NoError(t, err)
				rc.Close()
				got[f.Name] = string(data)
			}
			assert.Equal(t, map[string]string{"a.txt": "hello", "b.txt": "world"}, got)
		})
	}
}

func TestDownload_Errors(t *testing.T) {
	_, mux := setupTestAPI(t, 1000)

	tests := []struct {
		name string
		path string
		code int
	}{
		{name: "unknown link", path: "/share/abcdefghijk", code: http.StatusNotFound},
		{name: "invalid link", path: "/share/abc", code: http.StatusBadRequest},
		{name: "invalid chars", path: "/share/abcdefghij_k", code: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestListFiles_JSON(t *testing.T) {
	_, mux := setupTestAPI(t, 1000)

	rec := upload(t, mux, "application/json", "a.txt", "hello", "b.txt", "world")
	require.Equal(t, http.StatusCreated, rec.Code)
	link := rec.Header().Get(LinkHeader)

	req := httptest.NewRequest(http.MethodGet, "/files", nil)
	req.Header.Set("Accept", "application/json")
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp listFilesResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Entries, 1)

	entries := resp.Entries[0].Files[link]
	require.Len(t, entries, 2)
	assert.Equal(t, "a.txt", entries[0].Name)
	assert.Equal(t, "b.txt", entries[1].Name)
	assert.Equal(t, models.ArchiveFile(link), entries[0].Type)
}

func TestListFiles_Empty(t *testing.T) {
	_, mux := setupTestAPI(t, 1000)

	req := httptest.NewRequest(http.MethodGet, "/files", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"entries":[]}`, rec.Body.String())
}

func TestListFiles_HTML(t *testing.T) {
	_, mux := setupTestAPI(t, 1000)

	rec := upload(t, mux, "", "a.txt", "hello")
	link := rec.Header().Get(LinkHeader)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/files", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), `href="/share/`+link+`"`)
	assert.Contains(t, rec.Body.String(), "a.txt")
}

func TestHealth(t *testing.T) {
	_, mux := setupTestAPI(t, 1000)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{upload_service.ErrFileTooBig, http.StatusRequestEntityTooLarge},
		{upload_service.ErrEmptyUpload, http.StatusBadRequest},
		{upload_service.ErrInvalidLink, http.StatusBadRequest},
		{upload_service.ErrUploadInterrupted, http.StatusBadRequest},
		{upload_service.ErrArchiveNotFound, http.StatusNotFound},
		{upload_service.ErrMalformedArchive, http.StatusNotFound},
		{upload_service.ErrServerBusy, http.StatusServiceUnavailable},
		{upload_service.ErrFileCreateFailed, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.code, statusOf(tt.err))
		})
	}
}
