package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/digitsplit"
)

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, false)
	p.Report(digitsplit.Report{Expr: "12", Value: 12, Error: 9})
	p.Report(digitsplit.Report{Expr: "(1+2)", Value: 3})
	assert.NoError(t, p.Err())
	assert.Equal(t, "12 = 12\n(1+2) = 3\n", buf.String())
}

func TestPrinterColor(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, true)
	p.Report(digitsplit.Report{Expr: "(1+2)", Value: 3})
	p.Report(digitsplit.Report{Expr: "(1*2)", Value: 2, Error: 1})
	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "(1+2) = 3")
	assert.Contains(t, lines[0], "\x1b[", "exact match is styled")
	assert.Equal(t, "(1*2) = 2", lines[1], "inexact reports are never styled")
	assert.Empty(t, lines[2])
}

func TestPrinterColorAlwaysPiped(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, ColorEnabled("always", &buf))
	p.Report(digitsplit.Report{Expr: "(1+2)", Value: 3})
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestPrinterNoColor(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, ColorEnabled("never", &buf))
	p.Report(digitsplit.Report{Expr: "(1+2)", Value: 3})
	assert.Equal(t, "(1+2) = 3\n", buf.String())
}

type failWriter struct{ n int }

func (w *failWriter) Write(p []byte) (int, error) {
	w.n++
	return 0, errors.New("disk full")
}

func TestPrinterError(t *testing.T) {
	w := &failWriter{}
	p := New(w, false)
	p.Report(digitsplit.Report{Expr: "1", Value: 1})
	p.Report(digitsplit.Report{Expr: "2", Value: 2})
	assert.EqualError(t, p.Err(), "disk full")
	assert.Equal(t, 1, w.n)
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, ColorEnabled("always", &buf))
	assert.False(t, ColorEnabled("never", &buf))
	assert.False(t, ColorEnabled("auto", &buf))
}
