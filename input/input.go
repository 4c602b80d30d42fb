// Package input reads puzzle input files and splits them into lines and
// blank-line separated chunks, optionally converting each line to a typed
// value.
package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// ErrNotFound is returned by Read when the path does not name a readable
// regular file. For a missing or unreadable file the error also matches
// os.ErrNotExist or os.ErrPermission.
var ErrNotFound = errors.New("input not found")

// Read returns the contents of the file at path exactly as stored.
func Read(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, os.ErrPermission) {
			return "", fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return "", err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return "", err
	}
	if stat.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}
	b, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// A CastError records a line that could not be converted by a cast
// function.
type CastError struct {
	Line string
	Err  error
}

func (e *CastError) Error() string {
	return fmt.Sprintf("cannot convert line %q: %s", e.Line, e.Err)
}

func (e *CastError) Unwrap() error { return e.Err }

// String is the identity cast, for parsing lines as plain strings.
func String(s string) (string, error) { return s, nil }

// Int parses a base-10 integer.
func Int(s string) (int, error) { return strconv.Atoi(s) }

// split breaks text into lines, keeping empty ones. A final newline does
// not start another line.
func split(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Lines returns the non-empty lines of text in order.
func Lines(text string) []string {
	var lines []string
	for _, line := range split(text) {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Chunks partitions the non-empty lines of text into groups separated by
// blank lines. Leading, trailing, and repeated blank lines never produce an
// empty chunk, so text with no content yields no chunks at all.
func Chunks(text string) [][]string {
	var (
		chunks [][]string
		chunk  []string
	)
	for _, line := range split(text) {
		if line == "" {
			if len(chunk) > 0 {
				chunks = append(chunks, chunk)
				chunk = nil
			}
			continue
		}
		chunk = append(chunk, line)
	}
	if len(chunk) > 0 {
		chunks = append(chunks, chunk)
	}
	return chunks
}

// ParseLines converts each non-empty line of text with cast, sorting the
// result in ascending order if sorted is set. It stops at the first line
// cast rejects and returns a *CastError for it.
func ParseLines[T constraints.Ordered](text string, cast func(string) (T, error), sorted bool) ([]T, error) {
	return convert(Lines(text), cast, sorted)
}

// ParseChunks is like ParseLines but keeps the blank-line grouping of
// Chunks. Sorting applies within each chunk; chunk order is unchanged.
func ParseChunks[T constraints.Ordered](text string, cast func(string) (T, error), sorted bool) ([][]T, error) {
	chunks := Chunks(text)
	result := make([][]T, len(chunks))
	for i, chunk := range chunks {
		vals, err := convert(chunk, cast, sorted)
		if err != nil {
			return nil, err
		}
		result[i] = vals
	}
	return result, nil
}

func convert[T constraints.Ordered](lines []string, cast func(string) (T, error), sorted bool) ([]T, error) {
	vals := make([]T, len(lines))
	for i, line := range lines {
		v, err := cast(line)
		if err != nil {
			return nil, &CastError{Line: line, Err: err}
		}
		vals[i] = v
	}
	if sorted {
		slices.Sort(vals)
	}
	return vals, nil
}
