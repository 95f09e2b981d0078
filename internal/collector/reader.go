package collector

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInputClosed is returned when the input stream ends before a valid
// allocation is read.
var ErrInputClosed = errors.New("input closed")

// LineReader supplies raw input lines, one per call.
type LineReader interface {
	ReadLine() (string, error)
	Name() string
}

// StreamReader reads lines of any length from an io.Reader such as os.Stdin.
type StreamReader struct {
	r *bufio.Reader
}

// NewStreamReader wraps r in a buffered line reader.
func NewStreamReader(r io.Reader) *StreamReader {
	return &StreamReader{r: bufio.NewReader(r)}
}

func (s *StreamReader) Name() string { return "stdin" }

// ReadLine returns the next line without its trailing newline. A final line
// with no newline is still returned; ErrInputClosed follows it.
func (s *StreamReader) ReadLine() (string, error) {
	line, err := s.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read line: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ScriptReader replays a fixed list of lines, for tests and scripted runs.
type ScriptReader struct {
	Lines []string
	pos   int
}

// NewScriptReader creates a ScriptReader over lines.
func NewScriptReader(lines ...string) *ScriptReader {
	return &ScriptReader{Lines: lines}
}

func (s *ScriptReader) Name() string { return "script" }

func (s *ScriptReader) ReadLine() (string, error) {
	if s.pos >= len(s.Lines) {
		return "", ErrInputClosed
	}
	line := s.Lines[s.pos]
	s.pos++
	return line, nil
}

// Consumed reports how many lines have been read.
func (s *ScriptReader) Consumed() int { return s.pos }
