package mapping

import (
	"errors"
	"iter"
	"strings"

	"file-mapping/internal/input"
)

var ErrInvalidCursor = errors.New("游标越界：当前位置没有映射")

// Reader walks the mappings described by a set of list files. The list
// files are read on the first iteration call and never again.
type Reader interface {
	Rewind() error
	Valid() bool
	Current() (FileMapping, error)
	Key() (int, error)
	Next()
	Err() error
}

var _ Reader = (*ListReader)(nil)

type ListReader struct {
	sourceDir string
	targetDir string
	listFiles []string
	newFn     MappingFunc

	loaded   bool
	loadErr  error
	mappings []FileMapping
	cursor   int
}

func NewListReader(sourceDir, targetDir string, listFiles []string, fn MappingFunc) *ListReader {
	files := make([]string, len(listFiles))
	copy(files, listFiles)
	return &ListReader{
		sourceDir: sourceDir,
		targetDir: targetDir,
		listFiles: files,
		newFn:     fn,
	}
}

func NewUnixReader(sourceDir, targetDir string, listFiles []string) *ListReader {
	return NewListReader(sourceDir, targetDir, listFiles, unixMapping)
}

func NewWindowsReader(sourceDir, targetDir string, listFiles []string) *ListReader {
	return NewListReader(sourceDir, targetDir, listFiles, windowsMapping)
}

func (r *ListReader) load() error {
	if r.loaded {
		return r.loadErr
	}
	r.loaded = true

	lines, err := input.ReadLines(r.listFiles)
	if err != nil {
		r.loadErr = err
		return err
	}

	out := make([]FileMapping, 0, len(lines))
	for _, line := range lines {
		// Only truly empty lines are dropped; whitespace-only lines become
		// an empty relative path after trimming.
		if line == "" {
			continue
		}
		out = append(out, r.newFn(r.sourceDir, r.targetDir, strings.TrimSpace(line)))
	}
	r.mappings = out
	return nil
}

func (r *ListReader) Rewind() error {
	r.cursor = 0
	return r.load()
}

func (r *ListReader) Valid() bool {
	if r.load() != nil {
		return false
	}
	return r.cursor >= 0 && r.cursor < len(r.mappings)
}

func (r *ListReader) Current() (FileMapping, error) {
	if !r.Valid() {
		if r.loadErr != nil {
			return nil, r.loadErr
		}
		return nil, ErrInvalidCursor
	}
	return r.mappings[r.cursor], nil
}

func (r *ListReader) Key() (int, error) {
	if !r.Valid() {
		if r.loadErr != nil {
			return 0, r.loadErr
		}
		return 0, ErrInvalidCursor
	}
	return r.cursor, nil
}

func (r *ListReader) Next() {
	if r.load() != nil {
		return
	}
	if r.cursor < len(r.mappings) {
		r.cursor++
	}
}

func (r *ListReader) Err() error {
	return r.loadErr
}

// All rewinds the reader and yields every mapping with its ordinal. A load
// failure yields nothing; check Err afterwards.
func (r *ListReader) All() iter.Seq2[int, FileMapping] {
	return func(yield func(int, FileMapping) bool) {
		if r.Rewind() != nil {
			return
		}
		for ; r.Valid(); r.Next() {
			if !yield(r.cursor, r.mappings[r.cursor]) {
				return
			}
		}
	}
}

func (r *ListReader) Mappings() ([]FileMapping, error) {
	if err := r.load(); err != nil {
		return nil, err
	}
	out := make([]FileMapping, len(r.mappings))
	copy(out, r.mappings)
	return out, nil
}
