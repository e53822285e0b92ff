package model

import "sort"

// SeqMismatchStatus is the synthetic status bucket for the legacy
// sequence-mismatch fields the server used to report at top level.
const SeqMismatchStatus = "SEQ_MISMATCH"

// ReconciliationResult is the parsed response of one upload. It is created
// once per successful upload and replaced wholesale; it is never merged or
// mutated after Normalize.
type ReconciliationResult struct {
	ExchangeUniqueCount int                 `json:"exchange_unique_count"`
	PSPUniqueCount      int                 `json:"psp_unique_count"`
	ExchangeOnlyCount   int                 `json:"exchange_only_count"`
	PSPOnlyCount        int                 `json:"psp_only_count"`
	StatusCounts        map[string]int      `json:"status_counts"`
	StatusApplications  map[string][]string `json:"status_applications"`

	// Legacy response shape: the sequence-mismatch bucket as first-class
	// fields instead of entries in the status maps.
	GreaterSeqCount        *int     `json:"greater_seq_count,omitempty"`
	GreaterSeqMismatchApps []string `json:"greater_seq_mismatch_apps,omitempty"`
}

// Normalize folds the legacy greater_seq fields into the canonical status
// maps under SeqMismatchStatus. Idempotent: the legacy fields are cleared
// once folded.
func (r *ReconciliationResult) Normalize() {
	if r.GreaterSeqCount != nil {
		if r.StatusCounts == nil {
			r.StatusCounts = make(map[string]int)
		}
		r.StatusCounts[SeqMismatchStatus] = *r.GreaterSeqCount
		r.GreaterSeqCount = nil
	}
	if r.GreaterSeqMismatchApps != nil {
		if r.StatusApplications == nil {
			r.StatusApplications = make(map[string][]string)
		}
		r.StatusApplications[SeqMismatchStatus] = r.GreaterSeqMismatchApps
		r.GreaterSeqMismatchApps = nil
	}
}

// StatusCount is one row of the summary breakdown.
type StatusCount struct {
	Status string
	Count  int
}

// SortedStatusCounts returns the summary rows ordered by descending count,
// ties broken by status label.
func (r *ReconciliationResult) SortedStatusCounts() []StatusCount {
	rows := make([]StatusCount, 0, len(r.StatusCounts))
	for status, count := range r.StatusCounts {
		rows = append(rows, StatusCount{Status: status, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Status < rows[j].Status
	})
	return rows
}

// MaxStatusCount returns the largest status count, or 0 when there are none.
func (r *ReconciliationResult) MaxStatusCount() int {
	max := 0
	for _, count := range r.StatusCounts {
		if count > max {
			max = count
		}
	}
	return max
}

// BarPercent scales count against max for a summary percentage bar. The
// denominator is floored at 1 so an all-zero result never divides by zero.
func BarPercent(count, max int) int {
	if max < 1 {
		max = 1
	}
	return count * 100 / max
}
