package calibration

import (
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// ErrNoDigit is returned for a line holding no recognisable digit.
var ErrNoDigit = errors.New("no digit found")

var spelledDigits = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// Scanner finds the first and last digit of a line.
//
// The first digit is the leftmost match of the vocabulary. The last digit is the leftmost match of the reversed
// vocabulary in the reversed line, so a word overlapping the end of the previous one is still found.
type Scanner struct {
	forward  *regexp.Regexp
	backward *regexp.Regexp
	values   map[string]uint64
}

func newScanner(spelled bool) *Scanner {
	forward := []string{`\d`}
	backward := []string{`\d`}
	values := make(map[string]uint64, 2*len(spelledDigits))

	if spelled {
		for i, word := range spelledDigits {
			drow := reverse(word)
			forward = append(forward, word)
			backward = append(backward, drow)
			values[word] = uint64(i + 1)
			values[drow] = uint64(i + 1)
		}
	}

	return &Scanner{
		forward:  regexp.MustCompile(strings.Join(forward, "|")),
		backward: regexp.MustCompile(strings.Join(backward, "|")),
		values:   values,
	}
}

// Patterns are compiled once and shared: a Scanner is read-only after construction.
var (
	digitScanner   = sync.OnceValue(func() *Scanner { return newScanner(false) })
	spelledScanner = sync.OnceValue(func() *Scanner { return newScanner(true) })
)

// DigitScanner returns the scanner recognising literal digits only.
func DigitScanner() *Scanner {
	return digitScanner()
}

// SpelledScanner returns the scanner recognising literal digits and spelled digits.
func SpelledScanner() *Scanner {
	return spelledScanner()
}

// Scan returns the first and last digit of line. Both are the same digit when the line holds only one.
func (s *Scanner) Scan(line string) (uint64, uint64, error) {
	first := s.forward.FindString(line)
	if first == "" {
		return 0, 0, errors.Wrapf(ErrNoDigit, "line %q", line)
	}
	last := s.backward.FindString(reverse(line))

	firstValue, err := s.value(first)
	if err != nil {
		return 0, 0, err
	}
	lastValue, err := s.value(last)
	if err != nil {
		return 0, 0, err
	}

	return firstValue, lastValue, nil
}

// Value returns the calibration value of line: ten times its first digit plus its last digit.
func (s *Scanner) Value(line string) (uint64, error) {
	first, last, err := s.Scan(line)
	if err != nil {
		return 0, err
	}

	return first*10 + last, nil
}

func (s *Scanner) value(token string) (uint64, error) {
	if v, ok := s.values[token]; ok {
		return v, nil
	}

	v, err := strconv.ParseUint(token, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "unable to parse digit %q", token)
	}

	return v, nil
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}
