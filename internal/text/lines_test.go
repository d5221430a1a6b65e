package text_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/askiada/aoc-pipeline/internal/text"
)

func TestLines(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  []string
	}{
		"empty":            {input: "", want: []string{}},
		"single":           {input: "two1nine", want: []string{"two1nine"}},
		"trailing newline": {input: "a1\nb2\n", want: []string{"a1", "b2"}},
		"crlf":             {input: "a1\r\nb2\r\n", want: []string{"a1", "b2"}},
		"blank lines":      {input: "\na1\n\n  \nb2", want: []string{"a1", "b2"}},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, text.Lines(tc.input))
		})
	}
}
