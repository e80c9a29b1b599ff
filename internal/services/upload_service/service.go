package upload_service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/sunr3d/fshare/internal/config"
	"github.com/sunr3d/fshare/internal/interfaces/infra"
	"github.com/sunr3d/fshare/internal/interfaces/services"
	"github.com/sunr3d/fshare/internal/link"
	"github.com/sunr3d/fshare/internal/metrics"
	"github.com/sunr3d/fshare/models"
)

const chunkSize = 32 * 1024

var _ services.UploadService = (*uploadService)(nil)

type uploadService struct {
	storage infra.Storage
	logger  *zap.Logger
	cfg     *config.Config
	slots   *semaphore.Weighted
}

func New(log *zap.Logger, cfg *config.Config, storage infra.Storage) services.UploadService {
	return &uploadService{
		storage: storage,
		logger:  log,
		cfg:     cfg,
		slots:   semaphore.NewWeighted(cfg.MaxConcurrentUploads),
	}
}

// Store writes every field into one new container and returns its link.
// The total size of all fields is capped by MaxUploadSize. On any failure
// the unsealed container is discarded, so nothing is left on disk.
func (s *uploadService) Store(ctx context.Context, fields services.FieldIterator) (string, error) {
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %v", ErrContextDone, ctx.Err())
	default:
	}

	if !s.slots.TryAcquire(1) {
		metrics.ObserveUpload(metrics.ResultBusy, 0)
		return "", ErrServerBusy
	}
	defer s.slots.Release(1)

	archiveLink := link.Generate()

	c, err := s.storage.Create(ctx, archiveLink)
	if err != nil {
		metrics.ObserveUpload(metrics.ResultError, 0)
		return "", fmt.Errorf("%w: %v", ErrFileCreateFailed, err)
	}

	sealed := false
	defer func() {
		if sealed {
			return
		}
		if err := c.Discard(); err != nil {
			s.logger.Error("не удалось удалить незавершённый архив",
				zap.String("link", archiveLink),
				zap.Error(err),
			)
		}
	}()

	written, count, err := s.writeFields(ctx, c, fields)
	if err != nil {
		metrics.ObserveUpload(resultOf(err), written)
		s.logger.Warn("загрузка отклонена",
			zap.String("link", archiveLink),
			zap.Int64("bytes", written),
			zap.Int("entries", count),
			zap.Error(err),
		)
		return "", err
	}

	if written == 0 {
		metrics.ObserveUpload(metrics.ResultEmpty, 0)
		s.logger.Info("загрузка отклонена: нет данных",
			zap.String("link", archiveLink),
			zap.Int("entries", count),
		)
		return "", ErrEmptyUpload
	}

	if err := c.Seal(); err != nil {
		metrics.ObserveUpload(metrics.ResultError, written)
		return "", fmt.Errorf("%w: %v", ErrArchiveSeal, err)
	}
	sealed = true

	metrics.ObserveUpload(metrics.ResultOK, written)
	s.logger.Info("архив сохранён",
		zap.String("link", archiveLink),
		zap.Int64("bytes", written),
		zap.Int("entries", count),
	)

	return archiveLink, nil
}

// writeFields copies fields into c chunk by chunk. The byte counter spans
// all entries, and the limit is checked before a chunk is written.
func (s *uploadService) writeFields(ctx context.Context, c infra.ContainerWriter, fields services.FieldIterator) (int64, int, error) {
	buf := make([]byte, chunkSize)

	var written int64
	count := 0

	for {
		field, err := fields.Next()
		if errors.Is(err, io.EOF) {
			return written, count, nil
		}
		if err != nil {
			return written, count, fmt.Errorf("%w: %v", ErrUploadInterrupted, err)
		}

		name := field.Name
		if name == "" {
			name = link.Generate()
		}

		w, err := c.CreateEntry(name)
		if err != nil {
			return written, count, fmt.Errorf("%w: %v", ErrFileWriteFailed, err)
		}
		count++

		for {
			select {
			case <-ctx.Done():
				return written, count, fmt.Errorf("%w: %v", ErrContextDone, ctx.Err())
			default:
			}

			n, rerr := field.Body.Read(buf)
			if n > 0 {
				written += int64(n)
				if written > s.cfg.MaxUploadSize {
					return written, count, fmt.Errorf("%w: лимит %d байт", ErrFileTooBig, s.cfg.MaxUploadSize)
				}

				if _, err := w.Write(buf[:n]); err != nil {
					return written, count, fmt.Errorf("%w: %v", ErrFileWriteFailed, err)
				}
			}

			if errors.Is(rerr, io.EOF) {
				break
			}
			if rerr != nil {
				return written, count, fmt.Errorf("%w: %v", ErrUploadInterrupted, rerr)
			}
		}
	}
}

func (s *uploadService) Get(ctx context.Context, archiveLink string) (*os.File, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrContextDone, ctx.Err())
	default:
	}

	if !link.Valid(archiveLink) {
		metrics.ObserveDownload(metrics.ResultInvalid)
		return nil, ErrInvalidLink
	}

	f, err := s.storage.Open(ctx, archiveLink)
	switch {
	case errors.Is(err, infra.ErrNotFound):
		metrics.ObserveDownload(metrics.ResultNotFound)
		return nil, ErrArchiveNotFound
	case errors.Is(err, infra.ErrMalformed):
		metrics.ObserveDownload(metrics.ResultInvalid)
		s.logger.Warn("запрошен повреждённый архив",
			zap.String("link", archiveLink),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrMalformedArchive, err)
	case err != nil:
		metrics.ObserveDownload(metrics.ResultError)
		return nil, fmt.Errorf("%w: %v", ErrFileOpenFailed, err)
	}

	metrics.ObserveDownload(metrics.ResultOK)
	s.logger.Info("архив выдан", zap.String("link", archiveLink))

	return f, nil
}

func (s *uploadService) List(ctx context.Context) ([]models.DateGroup, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrContextDone, ctx.Err())
	default:
	}

	entries, err := s.storage.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListFailed, err)
	}

	groups := GroupByDate(entries)
	s.logger.Debug("список файлов получен",
		zap.Int("entries", len(entries)),
		zap.Int("dates", len(groups)),
	)

	return groups, nil
}

func (s *uploadService) Health(ctx context.Context) error {
	return s.storage.Ping(ctx)
}

func resultOf(err error) string {
	switch {
	case errors.Is(err, ErrFileTooBig):
		return metrics.ResultTooBig
	case errors.Is(err, ErrEmptyUpload):
		return metrics.ResultEmpty
	default:
		return metrics.ResultError
	}
}
