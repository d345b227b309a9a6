package report

import "math"

// round2 四舍五入保留两位小数
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func approvalRate(approved, total int) float64 {
	if total <= 0 {
		return 0
	}
	return round2(float64(approved) / float64(total) * 100)
}
