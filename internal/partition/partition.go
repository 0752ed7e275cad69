// Package partition checks that the files nodo reports as unused never show
// up in its toposorted result list.
package partition

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sokinpui/nodo-tools/internal/fs"
)

// ErrNoUnused is returned by Check when there is no unused list to verify.
var ErrNoUnused = errors.New("no unused list")

// UnusedSet holds the resolved absolute paths of an unused list along with
// every spelling the entries were listed under.
type UnusedSet struct {
	Root    string
	entries map[string]struct{}
	listed  map[string]struct{}
}

// Len returns the number of distinct resolved paths.
func (s *UnusedSet) Len() int { return len(s.entries) }

func (s *UnusedSet) contains(path string) bool {
	_, ok := s.entries[path]
	return ok
}

// ResultSet holds the distinct raw lines of a result list.
type ResultSet struct {
	entries map[string]struct{}
}

// Len returns the number of distinct entries.
func (s *ResultSet) Len() int { return len(s.entries) }

// DisjointnessViolation is returned by Verify when result entries also
// appear in the unused set.
type DisjointnessViolation struct {
	Overlap     []string
	UnusedCount int
	ResultCount int
	UnionCount  int
}

func (e *DisjointnessViolation) Error() string {
	return fmt.Sprintf("trimming failed: %d unused file(s) present in result (|unused ∪ result| = %d, |unused| + |result| = %d): %s",
		len(e.Overlap), e.UnionCount, e.UnusedCount+e.ResultCount, strings.Join(e.Overlap, ", "))
}

// ReadUnused reads the unused list at path. Entries are trimmed and resolved
// relative to the directory holding the list.
func ReadUnused(path string) (*UnusedSet, error) {
	resolver, err := fs.ForListFile(path)
	if err != nil {
		return nil, err
	}

	set := &UnusedSet{
		Root:    resolver.Root(),
		entries: make(map[string]struct{}),
		listed:  make(map[string]struct{}),
	}
	err = scanLines(path, func(line string) {
		entry := strings.TrimSpace(line)
		if entry == "" {
			return
		}
		set.entries[resolver.Resolve(entry)] = struct{}{}
		set.listed[entry] = struct{}{}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read unused list: %w", err)
	}
	return set, nil
}

// ReadResult reads the result list at path. Entries keep their text as-is
// apart from the line terminator.
func ReadResult(path string) (*ResultSet, error) {
	set := &ResultSet{entries: make(map[string]struct{})}
	err := scanLines(path, func(line string) {
		if strings.TrimSpace(line) == "" {
			return
		}
		set.entries[line] = struct{}{}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read result list: %w", err)
	}
	return set, nil
}

// Verify returns nil when unused and result are disjoint and a
// *DisjointnessViolation otherwise. A result entry matches an unused entry
// if it equals its resolved path or any spelling it was listed under.
func Verify(unused *UnusedSet, result *ResultSet) error {
	var overlap []string
	for entry := range result.entries {
		_, byName := unused.listed[entry]
		if unused.contains(entry) || byName {
			overlap = append(overlap, entry)
		}
	}
	if len(overlap) == 0 {
		return nil
	}

	sort.Strings(overlap)
	return &DisjointnessViolation{
		Overlap:     overlap,
		UnusedCount: unused.Len(),
		ResultCount: result.Len(),
		UnionCount:  unused.Len() + result.Len() - len(overlap),
	}
}

// Check reads both lists and verifies them. It returns ErrNoUnused when
// unusedPath is empty or does not name a regular file.
func Check(unusedPath, resultPath string) (*UnusedSet, *ResultSet, error) {
	if !fs.IsRegularFile(unusedPath) {
		return nil, nil, ErrNoUnused
	}

	unused, err := ReadUnused(unusedPath)
	if err != nil {
		return nil, nil, err
	}
	result, err := ReadResult(resultPath)
	if err != nil {
		return unused, nil, err
	}
	return unused, result, Verify(unused, result)
}

// scanLines calls fn for each line of the file at path, without its line
// terminator. Lines may be of any length.
func scanLines(path string, fn func(line string)) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			fn(strings.TrimSuffix(line, "\r"))
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
