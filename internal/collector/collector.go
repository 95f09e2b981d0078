package collector

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"PolicySimulator/internal/model"
)

const (
	Prompt         = "Enter spending here: "
	MsgInvalid     = "Invalid input. Please try again."
	MsgSumMismatch = "Percentages do not sum to 100. Please try again."
)

var (
	ErrMalformed   = errors.New("malformed allocation")
	ErrSumMismatch = errors.New("percentages do not sum to 100")
)

// ParseAllocation validates one line of input. The line must hold exactly
// model.NumCategories whitespace-separated integers in [0,100] that sum to 100.
func ParseAllocation(line string) (model.Allocation, error) {
	var alloc model.Allocation

	fields := strings.Fields(line)
	if len(fields) != model.NumCategories {
		return alloc, fmt.Errorf("%w: want %d values, got %d", ErrMalformed, model.NumCategories, len(fields))
	}
	for i, f := range fields {
		if !isDigits(f) {
			return alloc, fmt.Errorf("%w: %q is not a non-negative integer", ErrMalformed, f)
		}
		v, err := strconv.Atoi(f)
		if err != nil || v > 100 {
			return alloc, fmt.Errorf("%w: %q is out of range", ErrMalformed, f)
		}
		alloc[i] = v
	}
	if sum := alloc.Sum(); sum != 100 {
		return alloc, fmt.Errorf("%w: got %d", ErrSumMismatch, sum)
	}
	return alloc, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Collector prompts for and validates one turn's allocation at a time.
type Collector struct {
	Reader   LineReader
	Out      io.Writer
	log      zerolog.Logger
	rejected int
}

// NewCollector creates a new Collector.
func NewCollector(reader LineReader, out io.Writer, log zerolog.Logger) *Collector {
	return &Collector{
		Reader: reader,
		Out:    out,
		log:    log.With().Str("component", "collector").Logger(),
	}
}

// Collect blocks until a valid allocation is read. Rejected lines print an
// error and the prompt is shown again. The only error returned comes from
// the reader, typically ErrInputClosed.
func (c *Collector) Collect() (model.Allocation, error) {
	for {
		fmt.Fprint(c.Out, Prompt)
		line, err := c.Reader.ReadLine()
		if err != nil {
			return model.Allocation{}, err
		}

		alloc, err := ParseAllocation(line)
		if err == nil {
			c.log.Debug().Ints("allocation", alloc[:]).Msg("allocation accepted")
			return alloc, nil
		}

		c.rejected++
		c.log.Debug().Err(err).Str("input", line).Msg("allocation rejected")
		if errors.Is(err, ErrSumMismatch) {
			fmt.Fprintln(c.Out, MsgSumMismatch)
		} else {
			fmt.Fprintln(c.Out, MsgInvalid)
		}
	}
}

// Rejected returns the number of lines rejected so far.
func (c *Collector) Rejected() int { return c.rejected }
