package parser

import (
	"time"

	"propostas/internal/model"
)

// 源表必需列
const (
	ColumnNegotiator  = "NEGOCIADOR"
	ColumnStatus      = "STATUS"
	ColumnSubmittedAt = "DATA DO ENVIO DA PROPOSTA"
)

// RequiredColumns 必需列（顺序即报错顺序）
var RequiredColumns = []string{ColumnNegotiator, ColumnStatus, ColumnSubmittedAt}

// Options 解析选项
type Options struct {
	// ColumnAliases 原始列名 -> 标准列名，用于表头不规范的工作表
	ColumnAliases map[string]string
}

// DroppedRow 因日期无法解析而被丢弃的行
type DroppedRow struct {
	RowNo  int    `json:"rowNo"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

// Result 解析结果
type Result struct {
	Records   []model.ProposalRecord `json:"records"`
	Dropped   []DroppedRow           `json:"dropped,omitempty"`
	TotalRows int                    `json:"totalRows"` // 非空数据行数
	Duration  time.Duration          `json:"duration"`
}
