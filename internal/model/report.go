package model

// 报表输出列名
const (
	ColumnNegotiator   = "NEGOCIADOR"
	ColumnMonth        = "Mês"
	ColumnApproved     = "Aprovadas"
	ColumnDenied       = "Negadas"
	ColumnTotal        = "Total de Propostas"
	ColumnApprovalRate = "Taxa de Aprovação (%)"
)

// SummaryRow 单个负责人的汇总行
type SummaryRow struct {
	Negotiator   string         `json:"negotiator"`
	Approved     int            `json:"approved"`
	Denied       int            `json:"denied"`
	Total        int            `json:"total"`
	ApprovalRate float64        `json:"approvalRate"`
	Other        map[string]int `json:"other,omitempty"` // 非通过/拒绝状态，不参与总数与通过率
}

// Report 汇总报表
type Report struct {
	Statuses []string     `json:"statuses"` // 额外状态列（已排序）
	Rows     []SummaryRow `json:"rows"`
}

// Empty 报表是否无数据
func (r Report) Empty() bool {
	return len(r.Rows) == 0
}

// MonthlyReport 单月报表
type MonthlyReport struct {
	Month  string `json:"month"`
	Report Report `json:"report"`
}

// Metrics 报表概览指标
type Metrics struct {
	TotalProposals   int     `json:"totalProposals"`
	TotalApproved    int     `json:"totalApproved"`
	MeanApprovalRate float64 `json:"meanApprovalRate"`
}
