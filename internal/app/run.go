package app

import (
	"fmt"

	"file-mapping/internal/mapping"
	"file-mapping/internal/plan"
)

func Run(opts Options) (Result, error) {
	p, err := plan.Resolve(plan.Options{
		ConfigPath: opts.ConfigPath,
		SourceDir:  opts.SourceDir,
		TargetDir:  opts.TargetDir,
		Style:      opts.Style,
		ListFiles:  opts.ListFiles,
		CWD:        opts.CWD,
	})
	if err != nil {
		return Result{}, err
	}

	newReader := opts.NewReader
	if newReader == nil {
		newReader = readerFor(p.Style)
	}
	r := newReader(p.SourceDir, p.TargetDir, p.ListFiles)

	result := Result{
		SourceDir: p.SourceDir,
		TargetDir: p.TargetDir,
		Style:     string(p.Style),
		ListFiles: p.ListFiles,
		Entries:   make([]Entry, 0),
		Warnings:  make([]string, 0),
	}

	if err := r.Rewind(); err != nil {
		return result, err
	}
	for ; r.Valid(); r.Next() {
		idx, err := r.Key()
		if err != nil {
			return result, err
		}
		m, err := r.Current()
		if err != nil {
			return result, err
		}
		if m.RelativePath() == "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("第 %d 条映射的相对路径为空（清单中存在仅含空白的行）：%s", idx, m.SourcePath()))
		}
		result.Entries = append(result.Entries, Entry{
			Index:        idx,
			RelativePath: m.RelativePath(),
			Source:       m.SourcePath(),
			Target:       m.TargetPath(),
		})
	}
	if err := r.Err(); err != nil {
		return result, err
	}

	result.Count = len(result.Entries)
	result.WarningCount = len(result.Warnings)
	return result, nil
}

func readerFor(style plan.Style) func(string, string, []string) mapping.Reader {
	if style == plan.StyleWindows {
		return func(src, tgt string, lists []string) mapping.Reader {
			return mapping.NewWindowsReader(src, tgt, lists)
		}
	}
	return func(src, tgt string, lists []string) mapping.Reader {
		return mapping.NewUnixReader(src, tgt, lists)
	}
}
