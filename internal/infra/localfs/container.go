package localfs

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"
)

type container struct {
	file   *os.File
	zw     *zip.Writer
	target string

	closed bool
	done   bool
}

func newContainer(f *os.File, target string) *container {
	return &container{
		file:   f,
		zw:     zip.NewWriter(f),
		target: target,
	}
}

// CreateEntry starts a stored (uncompressed) entry. The returned writer is
// valid until the next CreateEntry or Seal.
func (c *container) CreateEntry(name string) (io.Writer, error) {
	if c.done || c.closed {
		return nil, ErrContainerClosed
	}

	w, err := c.zw.CreateHeader(&zip.FileHeader{
		Name:     name,
		Method:   zip.Store,
		Modified: time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntryCreateFailed, err)
	}

	return w, nil
}

func (c *container) Seal() error {
	if c.done || c.closed {
		return ErrContainerClosed
	}

	if err := c.zw.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrSealFailed, err)
	}
	if err := c.file.Sync(); err != nil {
		return fmt.Errorf("%w: %v", ErrSealFailed, err)
	}

	c.closed = true
	if err := c.file.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrSealFailed, err)
	}

	if err := os.Rename(c.file.Name(), c.target); err != nil {
		return fmt.Errorf("%w: %v", ErrSealFailed, err)
	}

	c.done = true
	return nil
}

func (c *container) Discard() error {
	if c.done {
		return nil
	}
	c.done = true

	if !c.closed {
		c.closed = true
		c.file.Close()
	}

	if err := os.Remove(c.file.Name()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %v", ErrRemoveFailed, err)
	}

	return nil
}
