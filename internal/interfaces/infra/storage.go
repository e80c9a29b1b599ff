package infra

import (
	"context"
	"io"
	"os"

	"github.com/sunr3d/fshare/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.2 --name=Storage --output=../../../mocks
type Storage interface {
	Create(ctx context.Context, link string) (ContainerWriter, error)
	Open(ctx context.Context, link string) (*os.File, error)
	List(ctx context.Context) ([]models.Entry, error)
	Ping(ctx context.Context) error
}

// ContainerWriter is a container being written. It is invisible to List
// until Seal succeeds; Discard removes it and is a no-op after Seal.
type ContainerWriter interface {
	CreateEntry(name string) (io.Writer, error)
	Seal() error
	Discard() error
}
