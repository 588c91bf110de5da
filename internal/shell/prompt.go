package shell

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// readLine prints prompt and returns the next input line without its line
// ending. A final line without a newline is still returned; after that the
// error is io.EOF.
func (s *Shell) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, s.th.prompt.Render(prompt)+" ")
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readNumber keeps prompting until the input is an integer >= min.
func (s *Shell) readNumber(prompt string, min int) (int, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil && n >= min {
			return n, nil
		}
		s.log.Debug().Str("input", line).Int("min", min).Msg("rejected numeric input")
		if min > 0 {
			s.println(s.th.err, "Invalid input. Please enter a positive number.")
		} else {
			s.println(s.th.err, "Invalid input. Please enter a number.")
		}
	}
}

func (s *Shell) println(style lipgloss.Style, text string) {
	fmt.Fprintln(s.out, style.Render(text))
}

func (s *Shell) printf(style lipgloss.Style, format string, args ...any) {
	s.println(style, fmt.Sprintf(format, args...))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
