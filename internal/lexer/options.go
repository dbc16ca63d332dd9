package lexer

import "surge/internal/diag"

// Options configures a Scanner. Reporter receives ScanError diagnostics;
// a nil Reporter is treated as diag.NopReporter{}.
type Options struct {
	Reporter diag.Reporter
}

func (o Options) reporter() diag.Reporter {
	if o.Reporter == nil {
		return diag.NopReporter{}
	}
	return o.Reporter
}
