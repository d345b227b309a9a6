package report

import (
	"strings"

	"propostas/internal/model"
)

// Vocabulary 状态词表：把各种写法映射到“通过/拒绝”两个标准列
type Vocabulary struct {
	Approved       []string // 视为通过的状态值
	Denied         []string // 视为拒绝的状态值
	BlankSentinels []string // 需要从报表中剔除的占位负责人
}

// DefaultVocabulary 默认词表
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Approved:       []string{"Aprovada"},
		Denied:         []string{"Recusada"},
		BlankSentinels: []string{"vazio"},
	}
}

type statusKind int

const (
	statusOther statusKind = iota
	statusApproved
	statusDenied
)

// classify 判断状态属于通过、拒绝还是其他；标准列名本身也视为同义词
func (v Vocabulary) classify(status string) statusKind {
	s := strings.TrimSpace(status)
	if s == "" {
		return statusOther
	}
	if strings.EqualFold(s, model.ColumnApproved) || matchAny(s, v.Approved) {
		return statusApproved
	}
	if strings.EqualFold(s, model.ColumnDenied) || matchAny(s, v.Denied) {
		return statusDenied
	}
	return statusOther
}

func (v Vocabulary) isBlank(negotiator string) bool {
	return matchAny(strings.TrimSpace(negotiator), v.BlankSentinels)
}

func matchAny(s string, candidates []string) bool {
	for _, c := range candidates {
		if strings.EqualFold(s, strings.TrimSpace(c)) {
			return true
		}
	}
	return false
}
