package parser

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var reSpaces = regexp.MustCompile(`\s+`)

// NormalizeColumnName 规范化列名：NFC、去首尾空白、压缩连续空白、转大写
func NormalizeColumnName(name string) string {
	name = norm.NFC.String(name)
	name = strings.TrimSpace(name)
	name = reSpaces.ReplaceAllString(name, " ")
	return strings.ToUpper(name)
}

// CleanValue 单元格取值：去空白，空值替换为占位
func CleanValue(v, placeholder string) string {
	v = strings.TrimSpace(norm.NFC.String(v))
	if v == "" || strings.EqualFold(v, "nan") {
		return placeholder
	}
	return v
}

func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func blankRow(row []string, cols ...int) bool {
	for _, c := range cols {
		if getCell(row, c) != "" {
			return false
		}
	}
	return true
}
