package prompt

import (
	"io"
	"strings"
	"testing"

	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/digitsplit/internal/config"
)

// script answers prompts from a fixed list and records what was asked.
type script struct {
	answers []string
	err     error
	asked   []string
	offered []string
}

func (s *script) PromptWithSuggestion(prompt, text string, pos int) (string, error) {
	s.asked = append(s.asked, prompt)
	s.offered = append(s.offered, text)
	if len(s.answers) == 0 {
		if s.err != nil {
			return "", s.err
		}
		return "", io.EOF
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, nil
}

func TestAsk(t *testing.T) {
	s := &script{answers: []string{"1234", " 3 ", "24"}}
	cfg := config.Default()
	require.NoError(t, Ask(s, cfg))
	assert.Equal(t, "1234", cfg.Digits)
	assert.Equal(t, 3, cfg.Splits)
	assert.Equal(t, 24.0, cfg.Goal)
	assert.Equal(t, []string{"Digits: ", "Splits: ", "Goal: "}, s.asked)
	assert.Equal(t, []string{"123456789", "8", "10958"}, s.offered)
}

func TestAskDefaults(t *testing.T) {
	s := &script{answers: []string{"", "", ""}}
	cfg := config.Default()
	require.NoError(t, Ask(s, cfg))
	assert.Equal(t, config.Default(), cfg)
}

func TestAskRetry(t *testing.T) {
	s := &script{answers: []string{"12x", "12", "-1", "two", "1", "0.5"}}
	cfg := config.Default()
	require.NoError(t, Ask(s, cfg))
	assert.Equal(t, "12", cfg.Digits)
	assert.Equal(t, 1, cfg.Splits)
	assert.Equal(t, 0.5, cfg.Goal)
	assert.Len(t, s.asked, 6)
}

func TestAskGivesUp(t *testing.T) {
	s := &script{answers: []string{"a", "b", "c"}}
	err := Ask(s, config.Default())
	assert.ErrorContains(t, err, "Digits: ")
	assert.ErrorContains(t, err, `"c" is not a string of digits`)
}

func TestAskAborted(t *testing.T) {
	cases := []error{io.EOF, liner.ErrPromptAborted}
	for _, e := range cases {
		s := &script{answers: []string{"12"}, err: e}
		cfg := config.Default()
		assert.ErrorIs(t, Ask(s, cfg), ErrAborted)
		assert.Equal(t, "12", cfg.Digits)
	}
}

func TestScan(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want func(*config.Config)
	}{
		{"all", "1234 3 24\n", func(c *config.Config) { c.Digits, c.Splits, c.Goal = "1234", 3, 24 }},
		{"lines", "22\n1\n\n4", func(c *config.Config) { c.Digits, c.Splits, c.Goal = "22", 1, 4 }},
		{"partial", "  987 ", func(c *config.Config) { c.Digits = "987" }},
		{"empty", "", func(*config.Config) {}},
		{"extra", "12 1 3 ignored", func(c *config.Config) { c.Digits, c.Splits, c.Goal = "12", 1, 3 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := config.Default()
			require.NoError(t, Scan(strings.NewReader(c.in), cfg))
			want := config.Default()
			c.want(want)
			assert.Equal(t, want, cfg)
		})
	}
}

func TestScanInvalid(t *testing.T) {
	cases := []struct {
		in  string
		err string
	}{
		{"12x 1 3", `Digits: "12x" is not a string of digits`},
		{"12 -1 3", "Splits: -1 is negative"},
		{"12 one 3", "Splits: "},
		{"12 1 big", "Goal: "},
	}
	for _, c := range cases {
		err := Scan(strings.NewReader(c.in), config.Default())
		assert.ErrorContains(t, err, c.err, c.in)
	}
}
