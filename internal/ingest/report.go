package ingest

import (
	"fmt"
	"sort"
	"sync"
)

// FileFailure names one file that could not be ingested and why.
type FileFailure struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// Report summarizes one ingestion run over a session's uploaded files.
type Report struct {
	Message        string        `json:"message"`
	ProcessedFiles []string      `json:"processed_files"`
	SkippedCount   int           `json:"skipped_count"`
	FailedFiles    []FileFailure `json:"failed_files"`
}

// reportBuilder accumulates per-file outcomes from concurrent workers.
type reportBuilder struct {
	mu        sync.Mutex
	processed []string
	skipped   int
	failed    []FileFailure
}

func (b *reportBuilder) addProcessed(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.processed = append(b.processed, name)
}

func (b *reportBuilder) addSkipped() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.skipped++
}

func (b *reportBuilder) addFailed(name, reason string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failed = append(b.failed, FileFailure{Name: name, Reason: reason})
}

// build produces the final report with deterministic ordering.
func (b *reportBuilder) build() *Report {
	b.mu.Lock()
	defer b.mu.Unlock()

	sort.Strings(b.processed)
	sort.Slice(b.failed, func(i, j int) bool { return b.failed[i].Name < b.failed[j].Name })

	report := &Report{
		ProcessedFiles: b.processed,
		SkippedCount:   b.skipped,
		FailedFiles:    b.failed,
	}
	report.Message = summarize(report)
	return report
}

func summarize(r *Report) string {
	if len(r.ProcessedFiles) == 0 && r.SkippedCount == 0 && len(r.FailedFiles) == 0 {
		return "No files to process."
	}
	return fmt.Sprintf("Processed %d file(s), skipped %d duplicate(s), %d failed.",
		len(r.ProcessedFiles), r.SkippedCount, len(r.FailedFiles))
}
