package report

import (
	"sort"
	"time"

	"propostas/internal/model"
)

// BuildMonthlyReports 按月份键拆分记录，每个月独立汇总
func BuildMonthlyReports(records []model.ProposalRecord, vocab Vocabulary) map[string]model.Report {
	partitions := make(map[string][]model.ProposalRecord)
	for _, r := range records {
		key := r.MonthKey()
		partitions[key] = append(partitions[key], r)
	}

	out := make(map[string]model.Report, len(partitions))
	for key, part := range partitions {
		out[key] = BuildReport(part, vocab)
	}
	return out
}

// MonthlyBreakdown 按时间顺序返回每月报表
func MonthlyBreakdown(records []model.ProposalRecord, vocab Vocabulary) []model.MonthlyReport {
	reports := BuildMonthlyReports(records, vocab)
	keys := make([]string, 0, len(reports))
	for k := range reports {
		keys = append(keys, k)
	}
	sortMonthKeys(keys)

	out := make([]model.MonthlyReport, 0, len(keys))
	for _, k := range keys {
		out = append(out, model.MonthlyReport{Month: k, Report: reports[k]})
	}
	return out
}

// MonthKeys 列出记录中出现的月份（按时间先后）
func MonthKeys(records []model.ProposalRecord) []string {
	seen := make(map[string]struct{})
	keys := make([]string, 0)
	for _, r := range records {
		k := r.MonthKey()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	sortMonthKeys(keys)
	return keys
}

// ValidMonthKey 判断字符串是否为 MM/YYYY
func ValidMonthKey(s string) bool {
	if len(s) != len(model.MonthKeyLayout) {
		return false
	}
	_, err := time.Parse(model.MonthKeyLayout, s)
	return err == nil
}

// sortMonthKeys 按年、月排序；无法解析的键排在最后并按字符串排序
func sortMonthKeys(keys []string) {
	sort.SliceStable(keys, func(i, j int) bool {
		ti, erri := time.Parse(model.MonthKeyLayout, keys[i])
		tj, errj := time.Parse(model.MonthKeyLayout, keys[j])
		switch {
		case erri != nil && errj != nil:
			return keys[i] < keys[j]
		case erri != nil:
			return false
		case errj != nil:
			return true
		}
		return ti.Before(tj)
	})
}
