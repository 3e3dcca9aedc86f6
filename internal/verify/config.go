package verify

import (
	"errors"
	"fmt"
	"slices"

	"github.com/davejbax/memalign/internal/math"
)

var (
	errAlignmentNotPowerOfTwo = errors.New("max alignment must be a power of two")
	errEmptyRange             = errors.New("value range is empty")
	errUnknownType            = errors.New("unknown integer type")
	errNoTypes                = errors.New("no integer types selected")
	errParallelism            = errors.New("parallelism must be positive")
	errPointerAlignment       = errors.New("max alignment too large for pointer checks")
	errRangeTooLarge          = errors.New("value range too large")
)

const (
	// Pointer checks allocate a buffer four times the largest alignment.
	maxPointerAlignment = 1 << 20

	// Every subject is checked against every alignment, so the range is bounded.
	maxSubjectRange = 1 << 16
)

// Config selects the types, subjects and alignments a run covers.
type Config struct {
	// Integer types to check, by Go name
	Types []string `mapstructure:"types" default:"[\"int8\", \"int16\", \"int32\", \"int64\", \"uint8\", \"uint16\", \"uint32\", \"uint64\"]"`

	// Largest alignment checked; every power of two up to it is used
	MaxAlignment uint64 `mapstructure:"max_alignment" default:"128"`

	// Subjects are taken from the half-open range [Start, End)
	Start int64 `mapstructure:"start" default:"0"`
	End   int64 `mapstructure:"end" default:"16"`

	Negatives  bool `mapstructure:"negatives" default:"true"`
	Extremes   bool `mapstructure:"extremes" default:"true"`
	Properties bool `mapstructure:"properties" default:"true"`
	Pointers   bool `mapstructure:"pointers" default:"true"`

	Parallelism int `mapstructure:"parallelism" default:"4"`
}

// Validate rejects configs the checks cannot run with.
func (c *Config) Validate() error {
	if !math.IsPowerOfTwo(c.MaxAlignment) {
		return fmt.Errorf("%w: %d", errAlignmentNotPowerOfTwo, c.MaxAlignment)
	}

	if c.Pointers && c.MaxAlignment > maxPointerAlignment {
		return fmt.Errorf("%w: %d > %d", errPointerAlignment, c.MaxAlignment, maxPointerAlignment)
	}

	if c.Start >= c.End {
		return fmt.Errorf("%w: [%d, %d)", errEmptyRange, c.Start, c.End)
	}

	// Start < End, so the wrapped difference is still the true width.
	if width := uint64(c.End - c.Start); width > maxSubjectRange {
		return fmt.Errorf("%w: %d > %d", errRangeTooLarge, width, maxSubjectRange)
	}

	if len(c.Types) == 0 {
		return errNoTypes
	}

	for _, name := range c.Types {
		if !slices.Contains(TypeNames(), name) {
			return fmt.Errorf("%w: '%s'", errUnknownType, name)
		}
	}

	if c.Parallelism <= 0 {
		return fmt.Errorf("%w: %d", errParallelism, c.Parallelism)
	}

	return nil
}
