package plan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrNoListFiles  = errors.New("至少提供一个清单文件")
	ErrUnknownStyle = errors.New("未知的路径风格")
)

// Resolve merges the plan file (if any) with flag values. Non-empty flag
// values win; positional list files come after the plan's lists. Source
// and target directories are kept verbatim.
func Resolve(opts Options) (Plan, error) {
	cwd := opts.CWD
	if strings.TrimSpace(cwd) == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Plan{}, fmt.Errorf("读取当前目录失败：%w", err)
		}
		cwd = wd
	}

	p := Plan{Style: StyleUnix}
	lists := make([]string, 0, len(opts.ListFiles))

	if cfg := strings.TrimSpace(opts.ConfigPath); cfg != "" {
		f, err := LoadFile(absPath(cwd, cfg))
		if err != nil {
			return Plan{}, err
		}
		p.SourceDir = f.Source
		p.TargetDir = f.Target
		p.Style = f.Style
		lists = append(lists, f.Lists...)
	}

	if opts.SourceDir != "" {
		p.SourceDir = opts.SourceDir
	}
	if opts.TargetDir != "" {
		p.TargetDir = opts.TargetDir
	}
	if s := strings.TrimSpace(opts.Style); s != "" {
		p.Style = Style(strings.ToLower(s))
	}

	for _, l := range opts.ListFiles {
		if strings.TrimSpace(l) == "" {
			continue
		}
		lists = append(lists, absPath(cwd, l))
	}

	switch p.Style {
	case StyleUnix, StyleWindows:
	default:
		return Plan{}, fmt.Errorf("%w：%s（可选 unix、windows）", ErrUnknownStyle, p.Style)
	}
	if len(lists) == 0 {
		return Plan{}, ErrNoListFiles
	}
	p.ListFiles = lists
	return p, nil
}

func absPath(cwd, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(cwd, p))
}
