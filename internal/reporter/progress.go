// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reporter

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Progress receives paging observability signals. Implementations must
// not influence control flow; a fetch behaves identically with or
// without a sink.
type Progress interface {
	// Page is invoked after each page arrives with the number of pages
	// fetched so far, the offset of the page just fetched, and the
	// server-reported total.
	Page(pages, offset, total int)
}

// WriterProgress returns a sink that prints one line per page to w.
func WriterProgress(w io.Writer) Progress { return writerProgress{w: w} }

type writerProgress struct{ w io.Writer }

func (p writerProgress) Page(pages, offset, total int) {
	fmt.Fprintf(p.w, "fetched page %d (offset %d of %d)\n", pages, offset, total)
}

// ZapProgress returns a sink that logs each page at debug level.
func ZapProgress(l *zap.Logger) Progress { return zapProgress{l: l} }

type zapProgress struct{ l *zap.Logger }

func (p zapProgress) Page(pages, offset, total int) {
	p.l.Debug("fetched page",
		zap.Int("pages", pages),
		zap.Int("offset", offset),
		zap.Int("total", total))
}
