package entrypoint

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/sunr3d/fshare/internal/api"
	"github.com/sunr3d/fshare/internal/auth"
	"github.com/sunr3d/fshare/internal/config"
	"github.com/sunr3d/fshare/internal/infra/localfs"
	"github.com/sunr3d/fshare/internal/metrics"
	"github.com/sunr3d/fshare/internal/middleware"
	"github.com/sunr3d/fshare/internal/server"
	"github.com/sunr3d/fshare/internal/services/upload_service"
)

func Run(cfg *config.Config, log *zap.Logger) error {
	router, err := NewRouter(cfg, log)
	if err != nil {
		return err
	}

	srv := server.New(cfg.Address(), router, log, cfg.ReadTimeout, cfg.WriteTimeout)
	return srv.Start()
}

// NewRouter wires storage, service and handlers into the HTTP routing tree.
func NewRouter(cfg *config.Config, log *zap.Logger) (http.Handler, error) {
	storage, err := localfs.New(log, cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("не удалось подготовить хранилище: %w", err)
	}

	authenticator, err := auth.New(log, cfg)
	if err != nil {
		return nil, fmt.Errorf("не удалось инициализировать аутентификацию: %w", err)
	}

	svc := upload_service.New(log, cfg, storage)
	controller := api.New(svc, log, cfg)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", controller.Index)
	mux.HandleFunc("POST /{$}", controller.Upload)
	mux.HandleFunc("GET /share/{link}", controller.Download)
	mux.Handle("GET /files", middleware.BasicAuth(authenticator, log)(http.HandlerFunc(controller.ListFiles)))
	mux.HandleFunc("GET /health", controller.Health)
	mux.Handle("GET "+cfg.MetricsPath, metrics.Handler())

	router := http.Handler(mux)
	router = middleware.MultipartValidator()(router)
	router = middleware.ReqLogger(log)(router)
	router = middleware.Metrics()(router)
	router = middleware.Recovery(log)(router)

	return router, nil
}
