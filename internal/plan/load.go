package plan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a plan file. Relative list entries are resolved against
// the directory holding the plan file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取计划文件失败：%s：%w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s：%w", path, err)
	}

	base := filepath.Dir(path)
	for i, l := range f.Lists {
		if !filepath.IsAbs(l) {
			f.Lists[i] = filepath.Join(base, l)
		}
	}
	return f, nil
}

func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("解析计划文件失败：%w", err)
	}
	applyDefaults(&f)
	return &f, nil
}

func applyDefaults(f *File) {
	if f.Style == "" {
		f.Style = StyleUnix
	}
	lists := make([]string, 0, len(f.Lists))
	for _, l := range f.Lists {
		if strings.TrimSpace(l) == "" {
			continue
		}
		lists = append(lists, l)
	}
	f.Lists = lists
}
