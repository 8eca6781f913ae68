package engine

import (
	"bufio"
	"fmt"
	"io"
)

// A CommandSource hands out input lines. The second result is false at end
// of input.
type CommandSource interface {
	GetLine(prompt string) (string, bool)
}

type readerSource struct {
	scanner *bufio.Scanner
	out     io.Writer
	prompt  bool
}

// NewReaderSource wraps r as a command source. When prompt is true, prompts
// are written to out before each read; loaded script files use prompt =
// false.
func NewReaderSource(r io.Reader, out io.Writer, prompt bool) CommandSource {
	return &readerSource{scanner: bufio.NewScanner(r), out: out, prompt: prompt}
}

func (s *readerSource) GetLine(prompt string) (string, bool) {
	if s.prompt && prompt != "" && s.out != nil {
		fmt.Fprint(s.out, prompt)
	}
	if !s.scanner.Scan() {
		return "", false
	}
	return s.scanner.Text(), true
}
