package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingFile 源文件不存在
	ErrMissingFile = errors.New("source file not found")
	// ErrMissingSheet 工作表不存在
	ErrMissingSheet = errors.New("sheet not found")
	// ErrMissingColumn 缺少必需列
	ErrMissingColumn = errors.New("required column missing")
)

// MissingColumnError 缺少必需列（重命名之后仍未找到）
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("column %q not found", e.Column)
}

func (e *MissingColumnError) Unwrap() error {
	return ErrMissingColumn
}
