package cmd

import "errors"

var errListFailed = errors.New("生成映射失败")

func IsReportedError(err error) bool {
	return errors.Is(err, errListFailed)
}
