package cmd

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"strings"
	"time"

	"file-mapping/internal/plan"
)

type ndjsonEvent struct {
	Timestamp  string         `json:"timestamp"`
	Level      string         `json:"level"`
	Event      string         `json:"event"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`
	Suggestion string         `json:"suggestion,omitempty"`
}

func emitNDJSON(w io.Writer, level, event, message string, details map[string]any, suggestion string) {
	if w == nil {
		return
	}
	e := ndjsonEvent{
		Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
		Level:      level,
		Event:      event,
		Message:    message,
		Details:    details,
		Suggestion: suggestion,
	}
	buf, err := json.Marshal(e)
	if err != nil {
		fallback, _ := json.Marshal(ndjsonEvent{
			Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
			Level:      "error",
			Event:      "logger_error",
			Message:    "NDJSON 序列化失败",
			Details:    map[string]any{"reason": err.Error()},
			Suggestion: "检查日志字段是否包含无法序列化的数据结构",
		})
		_, _ = w.Write(append(fallback, '\n'))
		return
	}
	_, _ = w.Write(append(buf, '\n'))
}

func suggestionForError(err error) string {
	lower := strings.ToLower(err.Error())
	switch {
	case errors.Is(err, plan.ErrNoListFiles):
		return "至少传入一个清单文件，例如：file-mapping -s /abs/src -t /abs/tgt deploy/files.txt；或在 --config 中配置 lists"
	case errors.Is(err, plan.ErrUnknownStyle):
		return "--style 只支持 unix 或 windows"
	case errors.Is(err, fs.ErrNotExist):
		return "检查清单文件路径是否存在；相对路径以当前目录（或计划文件所在目录）为基准"
	case errors.Is(err, fs.ErrPermission) || strings.Contains(lower, "permission denied"):
		return "检查清单文件的读取权限"
	case strings.Contains(err.Error(), "解析计划文件失败"):
		return "检查计划文件的 YAML 语法，字段为 source、target、style、lists"
	default:
		return "根据 details 中的错误信息逐项排查；优先检查路径和权限"
	}
}

func EmitUnhandledError(w io.Writer, err error) {
	if err == nil {
		return
	}
	emitNDJSON(w, "error", "fatal_error", "程序执行失败", map[string]any{
		"error": err.Error(),
	}, suggestionForError(err))
}
