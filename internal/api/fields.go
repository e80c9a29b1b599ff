package api

import (
	"errors"
	"io"
	"mime/multipart"

	"github.com/sunr3d/fshare/internal/interfaces/services"
)

var _ services.FieldIterator = (*multipartFields)(nil)

type multipartFields struct {
	reader *multipart.Reader
}

func (m *multipartFields) Next() (*services.Field, error) {
	part, err := m.reader.NextPart()
	if errors.Is(err, io.EOF) {
		return nil, io.EOF
	}
	if err != nil {
		return nil, err
	}

	return &services.Field{
		Name: part.FileName(),
		Body: part,
	}, nil
}
