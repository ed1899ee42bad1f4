// Package imagefile stores finished disk images.
package imagefile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/afero"
)

// ErrExists is returned by Write when the destination exists and
// Options.Force is not set.
var ErrExists = errors.New("file already exists")

// zstdExt is appended to compressed image file names.
const zstdExt = ".zst"

// Options configures Write.
type Options struct {
	Force bool // overwrite an existing file
	Zstd  bool // compress the image with zstd
}

// Write stores image at path on fsys, creating parent directories as
// needed. When compressing, zstdExt is appended to path unless present.
// Write returns the path of the written file.
func Write(fsys afero.Fs, path string, image []byte, opts Options) (string, error) {
	path = filepath.Clean(path)
	if opts.Zstd && !strings.HasSuffix(path, zstdExt) {
		path += zstdExt
	}

	if !opts.Force {
		exists, err := afero.Exists(fsys, path)
		if err != nil {
			return "", err
		}
		if exists {
			return "", fmt.Errorf("%s: %w (use force to overwrite)", path, ErrExists)
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := fsys.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating directory: %w", err)
		}
	}

	f, err := fsys.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return "", err
	}
	if err := write(f, image, opts); err != nil {
		f.Close()
		fsys.Remove(path)
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		fsys.Remove(path)
		return "", err
	}
	return path, nil
}

func write(w io.Writer, image []byte, opts Options) error {
	if !opts.Zstd {
		_, err := w.Write(image)
		return err
	}
	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return err
	}
	if _, err := zw.Write(image); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// Read returns the image stored at path on fsys, decompressing files whose
// name ends in zstdExt.
func Read(fsys afero.Fs, path string) ([]byte, error) {
	b, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, zstdExt) {
		return b, nil
	}
	zr, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return zr.DecodeAll(b, nil)
}
