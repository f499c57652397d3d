package matrix

import (
	"errors"
	"fmt"
)

// ErrSizeMismatch reports that input and output shapes disagree.
var ErrSizeMismatch = errors.New("matrix: size mismatch")

// Status is the result of a matrix kernel.
// Values follow the CMSIS-DSP status numbering.
type Status int

const (
	// Success means every output element was written.
	Success Status = 0
	// SizeMismatch means the shapes disagreed and no element was written.
	SizeMismatch Status = -3
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case Success:
		return "Success"
	case SizeMismatch:
		return "SizeMismatch"
	default:
		return "Unknown"
	}
}

// Err converts s to an error: nil for Success, ErrSizeMismatch for SizeMismatch.
func (s Status) Err() error {
	switch s {
	case Success:
		return nil
	case SizeMismatch:
		return ErrSizeMismatch
	default:
		return fmt.Errorf("matrix: unknown status %d", int(s))
	}
}
