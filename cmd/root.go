package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"file-mapping/internal/app"
	"file-mapping/internal/plan"
)

type listFlags struct {
	sourceDir  string
	targetDir  string
	configPath string
	style      string
	format     string
	verbose    bool
}

func Execute() error {
	root := NewRootCmd(os.Stdout, os.Stderr)
	root.SetArgs(normalizeArgs(os.Args[1:]))
	return root.Execute()
}

func NewRootCmd(stdout io.Writer, stderr io.Writer) *cobra.Command {
	flags := &listFlags{}
	showVersion := false

	root := &cobra.Command{
		Use:           "file-mapping [list-files...]",
		Short:         "根据清单文件生成源路径到目标路径的映射",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runList(stdout, stderr, flags, false, &showVersion),
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.CompletionOptions.HiddenDefaultCmd = true
	bindListFlags(root, flags)
	root.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "显示版本信息")

	listCmd := &cobra.Command{
		Use:           "list [list-files...]",
		Short:         "读取清单文件并输出映射",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runList(stdout, stderr, flags, true, &showVersion),
	}
	root.AddCommand(listCmd)

	versionCmd := &cobra.Command{
		Use:           "version",
		Short:         "显示版本信息",
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(stdout)
		},
	}
	root.AddCommand(versionCmd)
	return root
}

func bindListFlags(cmd *cobra.Command, flags *listFlags) {
	cmd.PersistentFlags().StringVarP(&flags.sourceDir, "source", "s", "", "源目录")
	cmd.PersistentFlags().StringVarP(&flags.targetDir, "target", "t", "", "目标目录")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "YAML 计划文件")
	cmd.PersistentFlags().StringVar(&flags.style, "style", "", "路径风格：unix 或 windows（默认 unix）")
	cmd.PersistentFlags().StringVarP(&flags.format, "format", "f", formatText, "输出格式：text、ndjson 或 yaml")
	cmd.PersistentFlags().BoolVar(&flags.verbose, "verbose", false, "输出详细日志")
}

func runList(stdout io.Writer, stderr io.Writer, flags *listFlags, subcommand bool, showVersion *bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if showVersion != nil && *showVersion {
			printVersion(stdout)
			return nil
		}
		if !validFormat(flags.format) {
			return fmt.Errorf("未知的输出格式：%s（可选 text、ndjson、yaml）", flags.format)
		}
		if len(args) == 0 && strings.TrimSpace(flags.configPath) == "" {
			if subcommand {
				_ = cmd.Help()
			}
			emitNDJSON(stderr, "error", "invalid_input", "至少提供一个清单文件", nil, suggestionForError(plan.ErrNoListFiles))
			return fmt.Errorf("%w：%w", errListFailed, plan.ErrNoListFiles)
		}

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("读取当前目录失败：%w", err)
		}

		res, err := app.Run(app.Options{
			ConfigPath: flags.configPath,
			SourceDir:  flags.sourceDir,
			TargetDir:  flags.targetDir,
			Style:      flags.style,
			ListFiles:  args,
			CWD:        cwd,
		})
		if err != nil {
			event := "list_failed"
			if errors.Is(err, plan.ErrNoListFiles) || errors.Is(err, plan.ErrUnknownStyle) {
				event = "invalid_input"
			}
			emitNDJSON(stderr, "error", event, "生成映射失败", map[string]any{
				"error":      err.Error(),
				"list_files": res.ListFiles,
			}, suggestionForError(err))
			return fmt.Errorf("%w：%w", errListFailed, err)
		}

		if flags.verbose {
			emitNDJSON(stderr, "info", "plan_resolved", "已解析映射计划", map[string]any{
				"source_dir": res.SourceDir,
				"target_dir": res.TargetDir,
				"style":      res.Style,
				"list_files": res.ListFiles,
			}, "")
		}
		return render(stdout, stderr, flags.format, res)
	}
}

func normalizeArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}
	first := args[0]
	switch first {
	case "list", "help", "completion", "version":
		return args
	}
	if first == "-h" || first == "--help" || first == "-v" || first == "--version" {
		return args
	}
	if !containsPositionalInput(args) {
		return args
	}
	return append([]string{"list"}, args...)
}

var valueFlags = []string{"--source", "-s", "--target", "-t", "--config", "-c", "--style", "--format", "-f"}

func containsPositionalInput(args []string) bool {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return i+1 < len(args)
		}
		if isValueFlag(arg) {
			i++
			continue
		}
		if strings.HasPrefix(arg, "-") {
			continue
		}
		return true
	}
	return false
}

func isValueFlag(arg string) bool {
	for _, f := range valueFlags {
		if arg == f {
			return true
		}
	}
	return false
}
