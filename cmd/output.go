package cmd

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
	"file-mapping/internal/app"
)

const (
	formatText   = "text"
	formatNDJSON = "ndjson"
	formatYAML   = "yaml"
)

func validFormat(f string) bool {
	switch f {
	case formatText, formatNDJSON, formatYAML:
		return true
	}
	return false
}

func render(stdout, stderr io.Writer, format string, res app.Result) error {
	switch format {
	case formatNDJSON:
		for _, e := range res.Entries {
			emitNDJSON(stdout, "info", "mapping", "映射", map[string]any{
				"index":         e.Index,
				"relative_path": e.RelativePath,
				"source":        e.Source,
				"target":        e.Target,
			}, "")
		}
		for _, w := range res.Warnings {
			emitNDJSON(stdout, "warn", "empty_relative_path", w, nil, "清理清单中仅含空白的行")
		}
		emitNDJSON(stdout, "info", "summary", "完成", map[string]any{
			"mapping_count": res.Count,
			"warning_count": res.WarningCount,
		}, "")
		return nil
	case formatYAML:
		for _, w := range res.Warnings {
			fmt.Fprintf(stderr, "warn: %s\n", w)
		}
		buf, err := yaml.Marshal(res.Entries)
		if err != nil {
			return fmt.Errorf("YAML 序列化失败：%w", err)
		}
		_, err = stdout.Write(buf)
		return err
	default:
		for _, e := range res.Entries {
			fmt.Fprintf(stdout, "%s -> %s\n", e.Source, e.Target)
		}
		for _, w := range res.Warnings {
			fmt.Fprintf(stderr, "warn: %s\n", w)
		}
		fmt.Fprintf(stderr, "完成：映射 %d，告警 %d\n", res.Count, res.WarningCount)
		return nil
	}
}
