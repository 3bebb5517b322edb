package cmd

import (
	"fmt"
	"io"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

func versionText() string {
	return fmt.Sprintf("file-mapping 版本：%s（commit: %s，构建时间: %s）", Version, Commit, BuildTime)
}

func printVersion(w io.Writer) {
	emitNDJSON(w, "info", "version_info", "版本信息", map[string]any{
		"tool":       "file-mapping",
		"version":    Version,
		"commit":     Commit,
		"build_time": BuildTime,
		"text":       versionText(),
	}, "")
}
