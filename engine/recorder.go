package engine

import (
	"encoding/json"
	"io"
	"sync"
)

// Recorder writes day reports to w as JSON lines.
type Recorder struct {
	mu     sync.Mutex
	writer *json.Encoder
	n      int
}

// NewRecorder creates a recorder that writes JSON lines to w.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{writer: json.NewEncoder(w)}
}

// Record writes one report.
func (r *Recorder) Record(report DayReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.writer.Encode(report); err != nil {
		return err
	}
	r.n++
	return nil
}

// RecordAll writes a report for every day the engine holds.
func (r *Recorder) RecordAll(eng *Engine) error {
	for _, d := range eng.Days() {
		if err := r.Record(eng.Day(d)); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of reports written.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.n
}

// ReadReports decodes a JSON-lines report stream, skipping malformed frames.
func ReadReports(rd io.Reader) ([]DayReport, error) {
	dec := json.NewDecoder(rd)
	var out []DayReport
	for {
		var rep DayReport
		if err := dec.Decode(&rep); err != nil {
			if err == io.EOF {
				break
			}
			return out, err
		}
		out = append(out, rep)
	}
	return out, nil
}
