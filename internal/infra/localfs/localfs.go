package localfs

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/sunr3d/fshare/internal/interfaces/infra"
	"github.com/sunr3d/fshare/models"
)

const (
	ArchiveExt = ".zip"

	stagingSuffix = ".part"
)

var _ infra.Storage = (*localStorage)(nil)

type localStorage struct {
	logger *zap.Logger
	dir    string
}

// New prepares dir as the storage directory. A directory that cannot be
// created or written to is an initialization error.
func New(log *zap.Logger, dir string) (infra.Storage, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageDir, err)
	}

	probe, err := os.CreateTemp(dir, ".probe-*")
	if err != nil {
		return nil, fmt.Errorf("%w: нет прав на запись: %v", ErrStorageDir, err)
	}
	probe.Close()
	os.Remove(probe.Name())

	log.Info("каталог хранилища готов", zap.String("path", dir))

	return &localStorage{
		logger: log,
		dir:    dir,
	}, nil
}

func (s *localStorage) Create(ctx context.Context, link string) (infra.ContainerWriter, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrContextDone, ctx.Err())
	default:
	}

	f, err := os.CreateTemp(s.dir, "."+link+"-*"+stagingSuffix)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileCreateFailed, err)
	}

	return newContainer(f, s.path(link)), nil
}

func (s *localStorage) Open(ctx context.Context, link string) (*os.File, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrContextDone, ctx.Err())
	default:
	}

	f, err := os.Open(s.path(link))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, infra.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileOpenFailed, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %v", ErrFileOpenFailed, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, infra.ErrNotFound
	}

	if _, err := zip.NewReader(f, info.Size()); err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %v", infra.ErrMalformed, err)
	}

	return f, nil
}

// List returns every entry of the storage directory. Containers expand to
// their inner entries; unreadable containers and staging files are skipped.
func (s *localStorage) List(ctx context.Context) ([]models.Entry, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrContextDone, ctx.Err())
	default:
	}

	dirEntries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListFailed, err)
	}

	entries := make([]models.Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		name := de.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		path := filepath.Join(s.dir, name)
		info, err := de.Info()
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("файл удалён во время чтения каталога", zap.String("path", path))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrListFailed, name, err)
		}

		created := creationTime(path, info)

		if !strings.HasSuffix(name, ArchiveExt) {
			entries = append(entries, models.Entry{
				Name:    name,
				Type:    models.RegularFile(),
				Size:    info.Size(),
				Created: created,
			})
			continue
		}

		names, err := entryNames(path)
		if err != nil {
			s.logger.Debug("файл пропущен: не является архивом",
				zap.String("path", path),
				zap.Error(err),
			)
			continue
		}

		origin := strings.TrimSuffix(name, ArchiveExt)
		for _, n := range names {
			entries = append(entries, models.Entry{
				Name:    n,
				Type:    models.ArchiveFile(origin),
				Size:    info.Size(),
				Created: created,
			})
		}
	}

	return entries, nil
}

func (s *localStorage) Ping(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", ErrContextDone, ctx.Err())
	default:
	}

	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s не является каталогом", ErrStorageDir, s.dir)
	}

	return nil
}

func (s *localStorage) path(link string) string {
	return filepath.Join(s.dir, link+ArchiveExt)
}
