package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinter_PlainWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Warning("Clipboard is empty. Nothing to process.")
	p.PrintOverlap([]string{"/top/a.sv", "/top/b.sv"})

	want := "Clipboard is empty. Nothing to process.\n" +
		"trimming failed: 2 unused file(s) found in the result:\n" +
		"  - /top/a.sv\n" +
		"  - /top/b.sv\n"
	assert.Equal(t, want, buf.String())
}
