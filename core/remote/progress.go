package remote

// progressWriter counts bytes written and reports whole-percent steps.
type progressWriter struct {
	total    int64
	written  int64
	lastStep int
	report   ProgressFunc
}

func newProgressWriter(total int64, report ProgressFunc) *progressWriter {
	return &progressWriter{total: total, lastStep: -1, report: report}
}

func (w *progressWriter) Write(p []byte) (int, error) {
	w.written += int64(len(p))
	if w.report == nil || w.total <= 0 {
		return len(p), nil
	}

	step := int(w.written * 100 / w.total)
	if step > 100 {
		step = 100
	}
	if step != w.lastStep {
		w.lastStep = step
		w.report(float64(step) / 100)
	}
	return len(p), nil
}

// finish reports completion if the last write did not already.
func (w *progressWriter) finish() {
	if w.report != nil && w.lastStep != 100 {
		w.lastStep = 100
		w.report(1)
	}
}
