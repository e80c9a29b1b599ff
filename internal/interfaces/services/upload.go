package services

import (
	"context"
	"io"
	"os"

	"github.com/sunr3d/fshare/models"
)

// Field is one uploaded file part. An empty Name means the client sent none.
type Field struct {
	Name string
	Body io.Reader
}

// FieldIterator yields fields in arrival order and returns io.EOF when done.
type FieldIterator interface {
	Next() (*Field, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.2 --name=UploadService --output=../../../mocks
type UploadService interface {
	Store(ctx context.Context, fields FieldIterator) (string, error)
	Get(ctx context.Context, link string) (*os.File, error)
	List(ctx context.Context) ([]models.DateGroup, error)
	Health(ctx context.Context) error
}
