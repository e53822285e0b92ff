package api

import "io"

// ProgressFunc reports upload progress as a percentage in [1, 100].
// Called repeatedly while the request body is being sent.
type ProgressFunc func(percent int)

// progressReader wraps the request body and reports percent-sent. Reports are
// monotonically non-decreasing and floored at 1 once any byte has gone out,
// so a caller never sees 0% after transmission has started.
type progressReader struct {
	r      io.Reader
	total  int64
	sent   int64
	last   int
	report ProgressFunc
}

func newProgressReader(r io.Reader, total int64, report ProgressFunc) *progressReader {
	return &progressReader{r: r, total: total, report: report}
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 && p.report != nil && p.total > 0 {
		p.sent += int64(n)
		pct := int(p.sent * 100 / p.total)
		if pct < 1 {
			pct = 1
		}
		if pct > 100 {
			pct = 100
		}
		if pct > p.last {
			p.last = pct
			p.report(pct)
		}
	}
	return n, err
}
