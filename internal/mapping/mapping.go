package mapping

type FileMapping interface {
	SourcePath() string
	TargetPath() string
	RelativePath() string
}

// MappingFunc builds one FileMapping for a relative path.
type MappingFunc func(sourceDir, targetDir, relativePath string) FileMapping

type joinedMapping struct {
	sourcePath   string
	targetPath   string
	relativePath string
}

func (m joinedMapping) SourcePath() string   { return m.sourcePath }
func (m joinedMapping) TargetPath() string   { return m.targetPath }
func (m joinedMapping) RelativePath() string { return m.relativePath }

func join(dir, sep, rel string) string {
	return dir + sep + rel
}

type UnixFileMapping struct{ joinedMapping }

func NewUnixFileMapping(sourceDir, targetDir, relativePath string) UnixFileMapping {
	return UnixFileMapping{joinedMapping{
		sourcePath:   join(sourceDir, "/", relativePath),
		targetPath:   join(targetDir, "/", relativePath),
		relativePath: relativePath,
	}}
}

type WindowsFileMapping struct{ joinedMapping }

func NewWindowsFileMapping(sourceDir, targetDir, relativePath string) WindowsFileMapping {
	return WindowsFileMapping{joinedMapping{
		sourcePath:   join(sourceDir, `\`, relativePath),
		targetPath:   join(targetDir, `\`, relativePath),
		relativePath: relativePath,
	}}
}

func unixMapping(sourceDir, targetDir, relativePath string) FileMapping {
	return NewUnixFileMapping(sourceDir, targetDir, relativePath)
}

func windowsMapping(sourceDir, targetDir, relativePath string) FileMapping {
	return NewWindowsFileMapping(sourceDir, targetDir, relativePath)
}
