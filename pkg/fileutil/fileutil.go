// Package fileutil reads drafts with a size cap and writes config files
// and draft templates without leaving half-written files behind.
package fileutil

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/shotgun/internal/errors"
)

// MaxReadSize caps ReadFile. Drafts and config files are far smaller.
const MaxReadSize int64 = 1 << 20

// ErrTooLarge is returned by ReadFile for files over MaxReadSize.
var ErrTooLarge = errors.Newf("file is larger than %d bytes", MaxReadSize)

// ReadFile reads path, refusing files over MaxReadSize. A missing file
// yields an error matching os.ErrNotExist.
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.Size() > MaxReadSize {
		return nil, errors.Wrapf(ErrTooLarge, "%s is %d bytes", path, info.Size())
	}

	data, err := io.ReadAll(io.LimitReader(f, MaxReadSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}
	if int64(len(data)) > MaxReadSize {
		return nil, errors.Wrap(ErrTooLarge, path)
	}
	return data, nil
}

// WriteFile replaces path with data in one rename. A temp file in the same
// directory receives the data first, so readers see the old content or the
// new content and never a mix. The parent directory must exist.
func WriteFile(path string, data []byte, perm os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return errors.Wrap(err, "writing temp file")
	}
	if err = tmp.Chmod(perm); err != nil {
		return errors.Wrap(err, "setting file mode")
	}
	if err = tmp.Sync(); err != nil {
		return errors.Wrap(err, "syncing temp file")
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrap(err, "replacing file")
	}
	return nil
}

// WriteYAML encodes v with two-space indentation and writes it with WriteFile.
func WriteYAML(path string, v any, perm os.FileMode) (err error) {
	defer func() {
		// yaml.v3 panics on values it cannot encode, such as funcs.
		if r := recover(); r != nil {
			err = errors.Newf("encoding YAML: %v", r)
		}
	}()

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "encoding YAML")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(err, "encoding YAML")
	}
	return WriteFile(path, buf.Bytes(), perm)
}
