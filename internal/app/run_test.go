package app

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"file-mapping/internal/mapping"
	"file-mapping/internal/plan"
)

func TestRunCollectEntries(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "a.txt"), []byte("x.txt\n\nsub/y.txt\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "b.txt"), []byte("z.txt\n"), 0o644))

	res, err := Run(Options{
		SourceDir: "/src",
		TargetDir: "/tgt",
		ListFiles: []string{"a.txt", "b.txt"},
		CWD:       tmp,
	})
	require.NoError(t, err)
	require.Equal(t, 3, res.Count)
	require.Equal(t, 0, res.WarningCount)
	require.Equal(t, "unix", res.Style)

	want := []Entry{
		{Index: 0, RelativePath: "x.txt", Source: "/src/x.txt", Target: "/tgt/x.txt"},
		{Index: 1, RelativePath: "sub/y.txt", Source: "/src/sub/y.txt", Target: "/tgt/sub/y.txt"},
		{Index: 2, RelativePath: "z.txt", Source: "/src/z.txt", Target: "/tgt/z.txt"},
	}
	if diff := cmp.Diff(want, res.Entries); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestRunWarnOnWhitespaceOnlyLine(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "a.txt"), []byte("x.txt\n \n"), 0o644))

	res, err := Run(Options{SourceDir: "/src", TargetDir: "/tgt", ListFiles: []string{"a.txt"}, CWD: tmp})
	require.NoError(t, err)
	require.Equal(t, 2, res.Count)
	require.Equal(t, 1, res.WarningCount)
	require.Contains(t, res.Warnings[0], "/src/")
	require.Equal(t, "/src/", res.Entries[1].Source)
}

func TestRunWindowsStyleFromPlan(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "files.txt"), []byte("a\\b.dll\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "plan.yaml"), []byte("source: 'C:\\src'\ntarget: 'D:\\tgt'\nstyle: windows\nlists: [files.txt]\n"), 0o644))

	res, err := Run(Options{ConfigPath: filepath.Join(tmp, "plan.yaml"), CWD: tmp})
	require.NoError(t, err)
	require.Equal(t, 1, res.Count)
	require.Equal(t, `C:\src\a\b.dll`, res.Entries[0].Source)
	require.Equal(t, `D:\tgt\a\b.dll`, res.Entries[0].Target)
}

func TestRunMissingListFile(t *testing.T) {
	tmp := t.TempDir()
	res, err := Run(Options{SourceDir: "/src", TargetDir: "/tgt", ListFiles: []string{"missing.txt"}, CWD: tmp})
	require.Error(t, err)
	require.True(t, errors.Is(err, fs.ErrNotExist))
	require.Empty(t, res.Entries)
}

func TestRunRequiresListFile(t *testing.T) {
	_, err := Run(Options{CWD: t.TempDir()})
	require.ErrorIs(t, err, plan.ErrNoListFiles)
}

type stubReader struct {
	items []mapping.FileMapping
	pos   int
}

func (s *stubReader) Rewind() error { s.pos = 0; return nil }
func (s *stubReader) Valid() bool   { return s.pos < len(s.items) }
func (s *stubReader) Next()         { s.pos++ }
func (s *stubReader) Err() error    { return nil }
func (s *stubReader) Key() (int, error) {
	if !s.Valid() {
		return 0, mapping.ErrInvalidCursor
	}
	return s.pos, nil
}
func (s *stubReader) Current() (mapping.FileMapping, error) {
	if !s.Valid() {
		return nil, mapping.ErrInvalidCursor
	}
	return s.items[s.pos], nil
}

func TestRunWithCustomReader(t *testing.T) {
	var gotLists []string
	res, err := Run(Options{
		SourceDir: "s",
		TargetDir: "t",
		ListFiles: []string{"/lists/a.txt"},
		CWD:       t.TempDir(),
		NewReader: func(src, tgt string, lists []string) mapping.Reader {
			gotLists = lists
			return &stubReader{items: []mapping.FileMapping{mapping.NewUnixFileMapping(src, tgt, "k")}}
		},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"/lists/a.txt"}, gotLists)
	require.Equal(t, 1, res.Count)
	require.Equal(t, "s/k", res.Entries[0].Source)
}
