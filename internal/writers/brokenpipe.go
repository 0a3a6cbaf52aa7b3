package writers

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether err means the reader went away (e.g. `| head`).
// Such errors end a run successfully.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
