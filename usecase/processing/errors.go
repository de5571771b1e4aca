package processing

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnreadableFile means no supported encoding could decode the file.
var ErrUnreadableFile = errors.New("no supported encoding could decode the file")

// ErrNoRegisteredDrivers means only-registered filtering was requested but
// the driver directory came back empty. Filtering against an empty set would
// silently produce a meaningless empty result, so this is fatal for a batch.
var ErrNoRegisteredDrivers = errors.New("no registered drivers in the directory")

// ErrBatchInFlight means the same file set is already being processed.
var ErrBatchInFlight = errors.New("a batch over the same files is already running")

// SchemaError reports required columns missing from a file's header.
type SchemaError struct {
	File    string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("file %s is missing required column(s): %s", e.File, strings.Join(e.Missing, ", "))
}
