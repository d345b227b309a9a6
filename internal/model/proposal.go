package model

import "time"

// MonthKeyLayout 月份键格式（MM/YYYY）
const MonthKeyLayout = "01/2006"

// FilterAll 筛选项“全部”
const FilterAll = "Todos"

// UndefinedLabel 空值占位（负责人/状态为空时使用）
const UndefinedLabel = "Não Definido"

// ProposalRecord 单条提案记录
type ProposalRecord struct {
	RowNo       int       `json:"rowNo"`
	Negotiator  string    `json:"negotiator"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// MonthKey 返回提交日期对应的月份键
func (r ProposalRecord) MonthKey() string {
	return r.SubmittedAt.Format(MonthKeyLayout)
}

// Filter 报表筛选条件，空值或 "Todos" 表示不过滤
type Filter struct {
	Negotiator string `json:"negotiator" form:"negotiator"`
	Month      string `json:"month" form:"month"`
}

// NegotiatorSelected 是否按负责人过滤
func (f Filter) NegotiatorSelected() bool {
	return isSelected(f.Negotiator)
}

// MonthSelected 是否按月份过滤
func (f Filter) MonthSelected() bool {
	return isSelected(f.Month)
}

func isSelected(v string) bool {
	return v != "" && v != FilterAll
}
