package api

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/sunr3d/fshare/internal/config"
	"github.com/sunr3d/fshare/internal/interfaces/services"
	"github.com/sunr3d/fshare/internal/services/upload_service"
)

const LinkHeader = "X-Fshare-Link"

//go:embed templates/*.html
var templateFS embed.FS

type UploadAPI struct {
	service services.UploadService
	logger  *zap.Logger
	cfg     *config.Config
	pages   *template.Template
}

func New(service services.UploadService, logger *zap.Logger, cfg *config.Config) *UploadAPI {
	pages := template.Must(template.New("").Funcs(template.FuncMap{
		"humanSize": humanSize,
		"unixTime":  unixTime,
	}).ParseFS(templateFS, "templates/*.html"))

	return &UploadAPI{
		service: service,
		logger:  logger,
		cfg:     cfg,
		pages:   pages,
	}
}

// GET /
func (h *UploadAPI) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, "home.html", h.cfg)
}

// POST /
func (h *UploadAPI) Upload(w http.ResponseWriter, r *http.Request) {
	mr, err := r.MultipartReader()
	if err != nil {
		h.logger.Warn("ошибка чтения multipart запроса", zap.Error(err))
		http.Error(w, "Некорректный запрос: ожидается multipart/form-data", http.StatusBadRequest)
		return
	}

	link, err := h.service.Store(r.Context(), &multipartFields{reader: mr})
	if err != nil {
		h.writeError(w, "ошибка сохранения загрузки", err)
		return
	}

	w.Header().Set(LinkHeader, link)

	if !wantsJSON(r) {
		http.Redirect(w, r, "/files", http.StatusSeeOther)
		return
	}

	h.writeJSON(w, http.StatusCreated, uploadResp{
		Link: link,
		URL:  fmt.Sprintf("/share/%s", link),
	})
}

// GET /share/{link}
func (h *UploadAPI) Download(w http.ResponseWriter, r *http.Request) {
	link := strings.TrimSuffix(r.PathValue("link"), ".zip")

	f, err := h.service.Get(r.Context(), link)
	if err != nil {
		h.writeError(w, "ошибка при попытке получения архива", err)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		h.writeError(w, "ошибка при попытке получения архива", err)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.zip\"", link))

	http.ServeContent(w, r, link+".zip", info.ModTime(), f)
}

// GET /files
func (h *UploadAPI) ListFiles(w http.ResponseWriter, r *http.Request) {
	groups, err := h.service.List(r.Context())
	if err != nil {
		h.writeError(w, "ошибка получения списка файлов", err)
		return
	}

	if wantsJSON(r) {
		h.writeJSON(w, http.StatusOK, listFilesResp{Entries: groups})
		return
	}

	h.render(w, "files.html", filesPage{Groups: groups})
}

// GET /health
func (h *UploadAPI) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Health(r.Context()); err != nil {
		h.logger.Error("хранилище недоступно", zap.Error(err))
		h.writeJSON(w, http.StatusServiceUnavailable, healthResp{Status: "degraded", Error: err.Error()})
		return
	}

	h.writeJSON(w, http.StatusOK, healthResp{Status: "ok"})
}

func (h *UploadAPI) render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := h.pages.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Error("ошибка отрисовки страницы", zap.String("template", name), zap.Error(err))
		http.Error(w, "Внутренняя ошибка сервера при отрисовке страницы", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (h *UploadAPI) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("ошибка кодирования JSON ответа", zap.Error(err))
	}
}

func (h *UploadAPI) writeError(w http.ResponseWriter, msg string, err error) {
	code := statusOf(err)
	if code >= http.StatusInternalServerError {
		h.logger.Error(msg, zap.Error(err))
		http.Error(w, "Внутренняя ошибка сервера", code)
		return
	}

	h.logger.Warn(msg, zap.Int("status", code), zap.Error(err))
	http.Error(w, err.Error(), code)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, upload_service.ErrFileTooBig):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, upload_service.ErrEmptyUpload),
		errors.Is(err, upload_service.ErrInvalidLink),
		errors.Is(err, upload_service.ErrUploadInterrupted):
		return http.StatusBadRequest
	case errors.Is(err, upload_service.ErrArchiveNotFound),
		errors.Is(err, upload_service.ErrMalformedArchive):
		return http.StatusNotFound
	case errors.Is(err, upload_service.ErrServerBusy):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func humanSize(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}

func unixTime(sec int64) string {
	return time.Unix(sec, 0).UTC().Format("15:04:05")
}
