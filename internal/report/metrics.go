package report

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"propostas/internal/model"
)

// Summarize 计算看板概览：提案总数、通过总数、平均通过率
func Summarize(r model.Report) model.Metrics {
	var m model.Metrics
	if len(r.Rows) == 0 {
		return m
	}

	var rateSum float64
	for _, row := range r.Rows {
		m.TotalProposals += row.Total
		m.TotalApproved += row.Approved
		rateSum += row.ApprovalRate
	}
	m.MeanApprovalRate = round2(rateSum / float64(len(r.Rows)))
	return m
}

// Negotiators 列出全部负责人，按葡萄牙语（巴西）排序规则排序
func Negotiators(records []model.ProposalRecord) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range records {
		if _, ok := seen[r.Negotiator]; ok {
			continue
		}
		seen[r.Negotiator] = struct{}{}
		out = append(out, r.Negotiator)
	}

	c := collate.New(language.BrazilianPortuguese)
	c.SortStrings(out)
	return out
}
