package parser

import (
	"errors"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// LoadWorkbook 打开工作簿并解析指定工作表
func LoadWorkbook(path, sheet string, opts Options) (*Result, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingFile, path)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel: %w", err)
	}
	defer wb.Close()

	return ParseSheet(wb, sheet, opts)
}

// ParseSheet 解析已打开工作簿中的工作表
func ParseSheet(wb *excelize.File, sheet string, opts Options) (*Result, error) {
	if wb == nil {
		return nil, errors.New("workbook is nil")
	}
	if idx, err := wb.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingSheet, sheet)
	}

	// 读取原始值，日期列才能拿到序列号而不是显示格式
	rows, err := wb.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	return ParseRows(rows, opts)
}
