package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

// Operation names the remote model call being measured.
type Operation string

const (
	OpAnalyze    Operation = "analyze"
	OpRank       Operation = "rank"
	OpDistribute Operation = "distribute"
)

var (
	opStarted   = map[Operation]*atomic.Uint64{OpAnalyze: {}, OpRank: {}, OpDistribute: {}}
	opCompleted = map[Operation]*atomic.Uint64{OpAnalyze: {}, OpRank: {}, OpDistribute: {}}
	opFailed    = map[Operation]*atomic.Uint64{OpAnalyze: {}, OpRank: {}, OpDistribute: {}}

	opDuration = map[Operation]*histogram{
		OpAnalyze:    newHistogram(durationBuckets),
		OpRank:       newHistogram(durationBuckets),
		OpDistribute: newHistogram(durationBuckets),
	}

	pagesRenderedTotal atomic.Uint64
)

var durationBuckets = []float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000}

// IncStarted increments the started counter for an operation.
func IncStarted(op Operation) {
	if c, ok := opStarted[op]; ok {
		c.Add(1)
	}
}

// IncCompleted increments the completed counter for an operation.
func IncCompleted(op Operation) {
	if c, ok := opCompleted[op]; ok {
		c.Add(1)
	}
}

// IncFailed increments the failed counter for an operation.
func IncFailed(op Operation) {
	if c, ok := opFailed[op]; ok {
		c.Add(1)
	}
}

// ObserveDurationMs records an operation duration in milliseconds.
func ObserveDurationMs(op Operation, value float64) {
	if value < 0 {
		value = 0
	}
	if h, ok := opDuration[op]; ok {
		h.Observe(value)
	}
}

// AddPagesRendered adds to the rendered page counter.
func AddPagesRendered(n int) {
	if n > 0 {
		pagesRenderedTotal.Add(uint64(n))
	}
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	for _, op := range []Operation{OpAnalyze, OpRank, OpDistribute} {
		writeCounter(&buf, fmt.Sprintf("%s_started_total", op), fmt.Sprintf("Total %s operations started", op), opStarted[op].Load())
		writeCounter(&buf, fmt.Sprintf("%s_completed_total", op), fmt.Sprintf("Total %s operations completed", op), opCompleted[op].Load())
		writeCounter(&buf, fmt.Sprintf("%s_failed_total", op), fmt.Sprintf("Total %s operations failed", op), opFailed[op].Load())
		writeHistogram(&buf, fmt.Sprintf("%s_duration_ms", op), fmt.Sprintf("%s duration in milliseconds", op), opDuration[op].Snapshot())
	}
	writeCounter(&buf, "pdf_pages_rendered_total", "Total PDF pages rasterized", pagesRenderedTotal.Load())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
