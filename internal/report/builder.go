// Package report 负责提案汇总：分组计数、状态透视、通过率与排序。
package report

import (
	"sort"

	"propostas/internal/model"
)

type accumulator struct {
	approved int
	denied   int
	other    map[string]int
}

// BuildReport 按负责人汇总提案
//
// 通过/拒绝之外的状态保留为额外列，不计入总数和通过率。
// 结果按总数降序，总数相同时保持负责人名称的升序（分组顺序）。
func BuildReport(records []model.ProposalRecord, vocab Vocabulary) model.Report {
	report := model.Report{
		Statuses: []string{},
		Rows:     []model.SummaryRow{},
	}
	if len(records) == 0 {
		return report
	}

	groups := make(map[string]*accumulator)
	extra := make(map[string]struct{})

	for _, r := range records {
		acc, ok := groups[r.Negotiator]
		if !ok {
			acc = &accumulator{other: make(map[string]int)}
			groups[r.Negotiator] = acc
		}

		switch vocab.classify(r.Status) {
		case statusApproved:
			acc.approved++
		case statusDenied:
			acc.denied++
		default:
			acc.other[r.Status]++
			extra[r.Status] = struct{}{}
		}
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		acc := groups[name]
		total := acc.approved + acc.denied
		row := model.SummaryRow{
			Negotiator:   name,
			Approved:     acc.approved,
			Denied:       acc.denied,
			Total:        total,
			ApprovalRate: approvalRate(acc.approved, total),
		}
		if len(acc.other) > 0 {
			row.Other = acc.other
		}
		report.Rows = append(report.Rows, row)
	}

	sort.SliceStable(report.Rows, func(i, j int) bool {
		return report.Rows[i].Total > report.Rows[j].Total
	})

	kept := report.Rows[:0]
	for _, row := range report.Rows {
		if vocab.isBlank(row.Negotiator) {
			continue
		}
		kept = append(kept, row)
	}
	report.Rows = kept

	for status := range extra {
		report.Statuses = append(report.Statuses, status)
	}
	sort.Strings(report.Statuses)
	return report
}

// Statuses 按首次出现顺序列出原始状态值
func Statuses(records []model.ProposalRecord) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range records {
		if _, ok := seen[r.Status]; ok {
			continue
		}
		seen[r.Status] = struct{}{}
		out = append(out, r.Status)
	}
	return out
}

// OtherCount 读取额外状态列的计数（缺失为 0）
func OtherCount(row model.SummaryRow, status string) int {
	if row.Other == nil {
		return 0
	}
	return row.Other[status]
}
