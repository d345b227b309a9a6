package parser

import (
	"time"

	"propostas/internal/model"
)

// ParseRows 将工作表行（首行为表头）解析为提案记录
//
// 日期无法解析的行被丢弃并记录在 Dropped 中；三列全空的行直接跳过。
// 完全空白的工作表视为空数据集。
func ParseRows(rows [][]string, opts Options) (*Result, error) {
	start := time.Now()

	if len(rows) == 0 {
		return &Result{Records: []model.ProposalRecord{}}, nil
	}

	cols, err := ResolveColumns(rows[0], opts.ColumnAliases)
	if err != nil {
		return nil, err
	}
	colNegotiator := cols[ColumnNegotiator]
	colStatus := cols[ColumnStatus]
	colDate := cols[ColumnSubmittedAt]

	result := &Result{
		Records: make([]model.ProposalRecord, 0, len(rows)-1),
	}

	for i, row := range rows[1:] {
		rowNo := i + 2
		if blankRow(row, colNegotiator, colStatus, colDate) {
			continue
		}
		result.TotalRows++

		rawDate := getCell(row, colDate)
		submittedAt, err := ParseDate(rawDate)
		if err != nil {
			result.Dropped = append(result.Dropped, DroppedRow{
				RowNo:  rowNo,
				Value:  rawDate,
				Reason: err.Error(),
			})
			continue
		}

		result.Records = append(result.Records, model.ProposalRecord{
			RowNo:       rowNo,
			Negotiator:  CleanValue(getCell(row, colNegotiator), model.UndefinedLabel),
			Status:      CleanValue(getCell(row, colStatus), model.UndefinedLabel),
			SubmittedAt: submittedAt,
		})
	}

	result.Duration = time.Since(start)
	return result, nil
}
