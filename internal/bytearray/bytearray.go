// Package bytearray renders content as a null-terminated C byte array, the
// form nodo uses to compile text such as its version string into the binary.
package bytearray

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"
)

// perLine is the number of byte literals written on each line.
const perLine = 8

// ErrInvalidUTF8 is returned by Normalize for content that is not UTF-8 text.
var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

// Normalize validates raw as UTF-8 text and trims surrounding white space.
func Normalize(raw []byte) ([]byte, error) {
	if !utf8.Valid(raw) {
		return nil, ErrInvalidUTF8
	}
	return bytes.TrimSpace(raw), nil
}

// Declaration is an `extern const char` array holding Data followed by a
// zero terminator.
type Declaration struct {
	Name string
	Data []byte
}

// Literals reports how many byte literals the declaration contains,
// terminator included.
func (d Declaration) Literals() int {
	return len(d.Data) + 1
}

// WriteTo writes the declaration to w.
func (d Declaration) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)

	fmt.Fprintf(bw, "extern const char %s[] = {", d.Name)
	lit := make([]byte, 0, 8)
	for i, b := range d.Data {
		if i%perLine == 0 {
			bw.WriteString("\n\t")
		}
		lit = append(lit[:0], "0x"...)
		lit = strconv.AppendUint(lit, uint64(b), 16)
		lit = append(lit, ", "...)
		bw.Write(lit)
	}
	bw.WriteString("\n\t0x00\n};\n")

	// bufio.Writer keeps the first write error and reports it from Flush.
	if err := bw.Flush(); err != nil {
		return cw.n, fmt.Errorf("failed to write declaration %q: %w", d.Name, err)
	}
	return cw.n, nil
}

// Emit writes the declaration of data under name to w.
func Emit(w io.Writer, name string, data []byte) error {
	_, err := Declaration{Name: name, Data: data}.WriteTo(w)
	return err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
