package input

import "fmt"

type ListFileError struct {
	Path string
	Err  error
}

func (e *ListFileError) Error() string {
	return fmt.Sprintf("读取清单文件失败：%s：%v", e.Path, e.Err)
}

func (e *ListFileError) Unwrap() error {
	return e.Err
}
