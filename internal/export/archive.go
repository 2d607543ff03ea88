package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"time"
)

// Archive collects named entries in memory and seals them into one blob.
type Archive interface {
	Add(name string, data []byte) error
	Seal() ([]byte, error)
}

type zipArchive struct {
	buf bytes.Buffer
	zw  *zip.Writer
	now time.Time
}

func NewZipArchive() Archive {
	a := &zipArchive{now: time.Now()}
	a.zw = zip.NewWriter(&a.buf)

	return a
}

func (a *zipArchive) Add(name string, data []byte) error {
	w, err := a.zw.CreateHeader(&zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: a.now,
	})
	if err != nil {
		return fmt.Errorf("adding %s: %w", name, err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}

	return nil
}

func (a *zipArchive) Seal() ([]byte, error) {
	if err := a.zw.Close(); err != nil {
		return nil, fmt.Errorf("closing archive: %w", err)
	}

	return a.buf.Bytes(), nil
}
