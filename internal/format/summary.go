package format

import (
	"fmt"
	"io"
	"sort"

	"github.com/gostrace/mstrace/internal/tracer"
)

// SummarySink suppresses per-event output and instead accumulates
// call/error counts per syscall name, printed as a table on Close (the
// `-c` flag, spec §6).
type SummarySink struct {
	w      io.Writer
	counts map[string]*summaryRow
	total  int
}

type summaryRow struct {
	calls  int
	errors int
}

func NewSummarySink(w io.Writer) *SummarySink {
	return &SummarySink{w: w, counts: map[string]*summaryRow{}}
}

func (s *SummarySink) Emit(evt tracer.Event) error {
	row, ok := s.counts[evt.Syscall]
	if !ok {
		row = &summaryRow{}
		s.counts[evt.Syscall] = row
	}
	row.calls++
	if evt.HasReturn && evt.Return < 0 {
		row.errors++
	}
	s.total++
	return nil
}

// Close prints the summary table: header, one sorted row per syscall name,
// and the `100.00 <total> total` footer.
func (s *SummarySink) Close() error {
	names := make([]string, 0, len(s.counts))
	for name := range s.counts {
		names = append(names, name)
	}
	sort.Strings(names)

	if _, err := fmt.Fprintf(s.w, "%% time     calls    errors syscall\n"); err != nil {
		return err
	}
	for _, name := range names {
		row := s.counts[name]
		pct := 0.0
		if s.total > 0 {
			pct = 100 * float64(row.calls) / float64(s.total)
		}
		if _, err := fmt.Fprintf(s.w, "%6.2f %9d %9d %s\n", pct, row.calls, row.errors, name); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(s.w, "100.00 %d total\n", s.total)
	return err
}
