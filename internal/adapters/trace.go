package adapters

import (
	"variant-match/internal/ports"
	"variant-match/internal/types"
)

// TraceCollector accumulates elimination records during a match, for
// inclusion in the written report. One collector serves one match run.
type TraceCollector struct {
	records []types.EliminationRecord
}

func NewTraceCollector() *TraceCollector {
	return &TraceCollector{}
}

func (c *TraceCollector) Record(record types.EliminationRecord) {
	c.records = append(c.records, record)
}

// Records returns the collected trace in elimination order.
func (c *TraceCollector) Records() []types.EliminationRecord {
	return append([]types.EliminationRecord(nil), c.records...)
}

var _ ports.ExplanationSink = (*TraceCollector)(nil)
