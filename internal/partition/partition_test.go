package partition

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeList(t *testing.T, path string, lines ...string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func TestReadUnused_ResolvesAgainstListDir(t *testing.T) {
	dir := t.TempDir()
	list := writeList(t, filepath.Join(dir, "build", "unused.txt"),
		"a.sv",
		"",
		"   ",
		"  rtl/b.sv  ",
		"a.sv",
	)

	set, err := ReadUnused(list)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "build"), set.Root)
	assert.Equal(t, 2, set.Len())
	assert.True(t, set.contains(filepath.Join(dir, "build", "a.sv")))
	assert.True(t, set.contains(filepath.Join(dir, "build", "rtl", "b.sv")))
}

func TestReadResult_KeepsRawLines(t *testing.T) {
	dir := t.TempDir()
	list := writeList(t, filepath.Join(dir, "result.txt"),
		"/top/a.sv",
		"",
		"\t",
		" b.sv",
		"/top/a.sv",
	)

	set, err := ReadResult(list)
	require.NoError(t, err)

	assert.Equal(t, 2, set.Len())
	assert.Contains(t, set.entries, "/top/a.sv")
	assert.Contains(t, set.entries, " b.sv")
	assert.NotContains(t, set.entries, "b.sv")
}

func TestReadUnused_KeepsEverySpelling(t *testing.T) {
	dir := t.TempDir()
	list := writeList(t, filepath.Join(dir, "unused.txt"), "./a.txt", "a.txt", "sub/../a.txt")

	set, err := ReadUnused(list)
	require.NoError(t, err)

	assert.Equal(t, 1, set.Len())
	assert.True(t, set.contains(filepath.Join(dir, "a.txt")))
	assert.Len(t, set.listed, 3)
}

func TestReadResult_LongLines(t *testing.T) {
	long := "/top/" + strings.Repeat("x", 2*1024*1024) + ".sv"
	list := writeList(t, filepath.Join(t.TempDir(), "result.txt"), "a.sv", long)
	// Drop the final newline so the last line ends at EOF.
	data, err := os.ReadFile(list)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(list, append(data[:len(data)-1], "\r\nc.sv"...), 0o644))

	set, err := ReadResult(list)
	require.NoError(t, err)

	assert.Equal(t, 3, set.Len())
	assert.Contains(t, set.entries, long)
	assert.Contains(t, set.entries, "c.sv")
}

func TestReadResult_Missing(t *testing.T) {
	_, err := ReadResult(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestVerify(t *testing.T) {
	dir := t.TempDir()
	unusedPath := writeList(t, filepath.Join(dir, "unused.txt"), "a.txt", "c.txt", "./d.txt", "d.txt")

	tests := []struct {
		name    string
		result  []string
		overlap []string
	}{
		{name: "disjoint", result: []string{"b.txt"}},
		{name: "empty result", result: []string{""}},
		{name: "same listed name", result: []string{"a.txt", "b.txt"}, overlap: []string{"a.txt"}},
		{name: "same resolved path", result: []string{filepath.Join(dir, "c.txt")}, overlap: []string{filepath.Join(dir, "c.txt")}},
		{name: "blank lines ignored", result: []string{"", "b.txt", "   ", ""}},
		{name: "second spelling of an unused file", result: []string{"d.txt"}, overlap: []string{"d.txt"}},
		{name: "first spelling of an unused file", result: []string{"./d.txt"}, overlap: []string{"./d.txt"}},
		{name: "overlap sorted", result: []string{"c.txt", "b.txt", "a.txt"}, overlap: []string{"a.txt", "c.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resultPath := writeList(t, filepath.Join(t.TempDir(), "result.txt"), tt.result...)

			unused, err := ReadUnused(unusedPath)
			require.NoError(t, err)
			result, err := ReadResult(resultPath)
			require.NoError(t, err)

			err = Verify(unused, result)
			if tt.overlap == nil {
				assert.NoError(t, err)
				return
			}

			var violation *DisjointnessViolation
			require.True(t, errors.As(err, &violation))
			assert.Equal(t, tt.overlap, violation.Overlap)
			assert.Equal(t, violation.UnusedCount+violation.ResultCount-len(tt.overlap), violation.UnionCount)
			assert.Contains(t, err.Error(), "trimming failed")
		})
	}
}

func TestCheck_NoUnused(t *testing.T) {
	dir := t.TempDir()
	result := writeList(t, filepath.Join(dir, "result.txt"), "a.txt")

	for _, unused := range []string{"", filepath.Join(dir, "missing.txt"), dir} {
		_, _, err := Check(unused, result)
		assert.ErrorIs(t, err, ErrNoUnused, "unused=%q", unused)
	}
}

func TestCheck_MissingResult(t *testing.T) {
	dir := t.TempDir()
	unused := writeList(t, filepath.Join(dir, "unused.txt"), "a.txt")

	_, _, err := Check(unused, filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoUnused)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCheck_Violation(t *testing.T) {
	dir := t.TempDir()
	unused := writeList(t, filepath.Join(dir, "unused.txt"), "a.txt")
	result := writeList(t, filepath.Join(dir, "result.txt"), "a.txt")

	u, r, err := Check(unused, result)
	var violation *DisjointnessViolation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, 1, u.Len())
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, 1, violation.UnionCount)
}
