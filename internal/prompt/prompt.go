// Package prompt reads the digits, split budget and goal, either
// interactively or from piped input.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/zephyrtronium/digitsplit/internal/config"
)

// ErrAborted is returned when the user cancels input.
var ErrAborted = errors.New("input aborted")

// Prompter reads a line of input, offering text as an editable default.
// *liner.State is a Prompter.
type Prompter interface {
	PromptWithSuggestion(prompt, text string, pos int) (string, error)
}

// Open starts line editing on the terminal. The caller must Close the result
// to restore the terminal.
func Open() *liner.State {
	ln := liner.NewLiner()
	ln.SetCtrlCAborts(true)
	return ln
}

// field is one of the values read into a config, in input order.
type field struct {
	prompt string
	get    func(*config.Config) string
	// set stores s into cfg, or returns an error if s is invalid.
	set func(cfg *config.Config, s string) error
}

var fields = []field{
	{
		prompt: "Digits: ",
		get:    func(cfg *config.Config) string { return cfg.Digits },
		set: func(cfg *config.Config, s string) error {
			if strings.TrimLeft(s, "0123456789") != "" {
				return fmt.Errorf("%q is not a string of digits", s)
			}
			cfg.Digits = s
			return nil
		},
	},
	{
		prompt: "Splits: ",
		get:    func(cfg *config.Config) string { return strconv.Itoa(cfg.Splits) },
		set: func(cfg *config.Config, s string) error {
			n, err := strconv.Atoi(s)
			if err != nil {
				return err
			}
			if n < 0 {
				return fmt.Errorf("%d is negative", n)
			}
			cfg.Splits = n
			return nil
		},
	},
	{
		prompt: "Goal: ",
		get:    func(cfg *config.Config) string { return strconv.FormatFloat(cfg.Goal, 'g', -1, 64) },
		set: func(cfg *config.Config, s string) error {
			g, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return err
			}
			cfg.Goal = g
			return nil
		},
	},
}

// maxAttempts bounds how many times one value is asked for.
const maxAttempts = 3

// Ask prompts for the digits, the number of splits and the goal in turn,
// offering the current values in cfg as defaults. A blank answer keeps the
// default. Invalid answers are asked for again.
func Ask(p Prompter, cfg *config.Config) error {
	for _, f := range fields {
		if err := ask(p, cfg, f); err != nil {
			return err
		}
	}
	return nil
}

func ask(p Prompter, cfg *config.Config, f field) error {
	def := f.get(cfg)
	var last error
	for i := 0; i < maxAttempts; i++ {
		s, err := p.PromptWithSuggestion(f.prompt, def, -1)
		switch {
		case errors.Is(err, liner.ErrPromptAborted), errors.Is(err, io.EOF):
			return ErrAborted
		case err != nil:
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			s = def
		}
		if last = f.set(cfg, s); last == nil {
			return nil
		}
	}
	return fmt.Errorf("%s%w", f.prompt, last)
}

// Scan reads the digits, the number of splits and the goal from r as
// whitespace-separated words, for input that is not a terminal. Values
// missing at the end of the input keep their current settings.
func Scan(r io.Reader, cfg *config.Config) error {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for _, f := range fields {
		if !sc.Scan() {
			break
		}
		if err := f.set(cfg, sc.Text()); err != nil {
			return fmt.Errorf("%s%w", f.prompt, err)
		}
	}
	return sc.Err()
}
