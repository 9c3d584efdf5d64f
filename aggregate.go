package bumblebee

import (
	"fmt"
	"time"
)

// Summary is the aggregate view of one batch run.
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
	Warnings  int // successful pairs that carried warnings
	Elapsed   time.Duration
}

// Summarize folds per-pair outcomes into summary statistics.
func Summarize(outcomes []BatchOutcome, elapsed time.Duration) Summary {
	s := Summary{Total: len(outcomes), Elapsed: elapsed}
	for _, out := range outcomes {
		switch out.Status {
		case StatusSuccess:
			s.Succeeded++
			if len(out.Warnings) > 0 {
				s.Warnings++
			}
		default:
			s.Failed++
		}
	}
	return s
}

// String renders the summary as a one-line report.
func (s Summary) String() string {
	line := fmt.Sprintf("%d/%d succeeded, %d failed in %s",
		s.Succeeded, s.Total, s.Failed, s.Elapsed.Round(time.Millisecond))
	if s.Warnings > 0 {
		line += fmt.Sprintf(" (%d with warnings)", s.Warnings)
	}
	return line
}
