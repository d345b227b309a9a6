package report

import "propostas/internal/model"

// ApplyFilter 按负责人/月份过滤记录，返回新切片，不修改输入
func ApplyFilter(records []model.ProposalRecord, f model.Filter) []model.ProposalRecord {
	out := make([]model.ProposalRecord, 0, len(records))
	for _, r := range records {
		if f.NegotiatorSelected() && r.Negotiator != f.Negotiator {
			continue
		}
		if f.MonthSelected() && r.MonthKey() != f.Month {
			continue
		}
		out = append(out, r)
	}
	return out
}
