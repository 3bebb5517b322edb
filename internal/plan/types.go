package plan

type Style string

const (
	StyleUnix    Style = "unix"
	StyleWindows Style = "windows"
)

// File is the on-disk plan:
//
//	source: /var/www/shared
//	target: /var/www/releases/42
//	style: unix
//	lists:
//	  - deploy/files.txt
type File struct {
	Source string   `yaml:"source"`
	Target string   `yaml:"target"`
	Style  Style    `yaml:"style,omitempty"`
	Lists  []string `yaml:"lists"`
}

type Options struct {
	ConfigPath string
	SourceDir  string
	TargetDir  string
	Style      string
	ListFiles  []string
	CWD        string
}

type Plan struct {
	SourceDir string
	TargetDir string
	Style     Style
	ListFiles []string
}
