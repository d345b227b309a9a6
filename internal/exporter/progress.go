package exporter

// ProgressEvent 月度导出进度事件
type ProgressEvent struct {
	Percent int
	Stage   string // 当前处理的月份，写盘阶段为 "salvando"
}

// WithProgress 设置进度回调，返回导出器本身
func (e *Exporter) WithProgress(fn func(ProgressEvent)) *Exporter {
	e.progress = fn
	return e
}

func (e *Exporter) reportProgress(percent int, stage string) {
	if e.progress == nil {
		return
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	e.progress(ProgressEvent{
		Percent: percent,
		Stage:   stage,
	})
}
