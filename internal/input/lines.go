package input

import (
	"bufio"
	"os"
)

const maxLineSize = 1024 * 1024

// ReadLines returns the raw lines of every list file, in the order the
// files are given. Line terminators are removed; nothing else is touched.
func ReadLines(paths []string) ([]string, error) {
	lines := make([]string, 0)
	for _, p := range paths {
		fileLines, err := readFile(p)
		if err != nil {
			return nil, &ListFileError{Path: p, Err: err}
		}
		lines = append(lines, fileLines...)
	}
	return lines, nil
}

func readFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out := make([]string, 0)
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
