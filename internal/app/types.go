package app

import "file-mapping/internal/mapping"

type Options struct {
	ConfigPath string
	SourceDir  string
	TargetDir  string
	Style      string
	ListFiles  []string
	CWD        string

	// NewReader overrides reader construction; nil picks one by style.
	NewReader func(sourceDir, targetDir string, listFiles []string) mapping.Reader
}

type Entry struct {
	Index        int    `json:"index" yaml:"-"`
	RelativePath string `json:"relative_path" yaml:"-"`
	Source       string `json:"source" yaml:"source"`
	Target       string `json:"target" yaml:"target"`
}

type Result struct {
	SourceDir    string
	TargetDir    string
	Style        string
	ListFiles    []string
	Entries      []Entry
	Count        int
	WarningCount int
	Warnings     []string
}
