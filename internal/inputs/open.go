// Package inputs resolves and opens the tool's input tables through a
// go-billy filesystem, so callers can swap the OS for an in-memory tree.
package inputs

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// ErrNotRegular is returned when a path is missing or is not a regular file.
var ErrNotRegular = errors.New("not a regular file")

// hostFS is the native filesystem: paths resolve as the OS would resolve them,
// relative ones against the working directory.
type hostFS struct {
	osfs.ChrootOS
}

//nolint:ireturn // billy.Filesystem is an interface; signature is dictated by upstream.
func (h *hostFS) Chroot(path string) (billy.Filesystem, error) {
	return osfs.New(path), nil
}

func (h *hostFS) Root() string { return "/" }

// OS returns the host filesystem.
//
//nolint:ireturn // callers only need the billy.Filesystem contract.
func OS() billy.Filesystem { return &hostFS{} }

// CheckRegular reports whether path names an existing regular file on fsys.
func CheckRegular(fsys billy.Filesystem, path string) error {
	info, err := fsys.Stat(path)
	switch {
	case err == nil && info.Mode().IsRegular():
		return nil
	case err == nil:
		return fmt.Errorf("%s: %w", path, ErrNotRegular)
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%s: %w", path, ErrNotRegular)
	default:
		return fmt.Errorf("stat %q: %w", path, err)
	}
}

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open opens path on fsys. Gzip input is detected by magic number (1F 8B)
// or by a .gz suffix and decompressed transparently.
func Open(fsys billy.Filesystem, path string) (io.ReadCloser, error) {
	fh, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	br := bufio.NewReader(fh)
	sig, _ := br.Peek(2)
	if (len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(br)
		if err != nil {
			_ = fh.Close()
			return nil, fmt.Errorf("gunzip %q: %w", path, err)
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return &multiReadCloser{Reader: br, closers: []io.Closer{fh}}, nil
}
