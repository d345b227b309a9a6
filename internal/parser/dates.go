package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// 文本日期支持的格式（日/月/年优先）
var dateLayouts = []string{
	"02/01/2006",
	"02/01/2006 15:04",
	"02/01/2006 15:04:05",
	"2/1/2006",
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// excel 序列号上限（9999-12-31）
const maxExcelSerial = 2958465

// 序列号只接受纯十进制数字（可带小数），排除 nan、inf、十六进制与指数写法
var serialPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

// ParseDate 解析提交日期：Excel 序列号或文本
func ParseDate(value string) (time.Time, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	if serialPattern.MatchString(v) {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date serial %s: %w", v, err)
		}
		if f <= 0 || f > maxExcelSerial {
			return time.Time{}, fmt.Errorf("date serial out of range: %s", v)
		}
		t, err := excelize.ExcelDateToTime(f, false)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date serial %s: %w", v, err)
		}
		return t, nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", v)
}
