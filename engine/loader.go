package engine

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/yourloops/basalviz/model"
)

// Format names an on-disk encoding of basal events.
type Format string

const (
	FormatJSON      Format = "json"  // one JSON array
	FormatJSONLines Format = "jsonl" // one event per line
	FormatYAML      Format = "yaml"  // YAML sequence
)

// FormatFromPath picks the format from a file extension. Unknown extensions
// are treated as JSON and sniffed again in Decode.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".jsonl", ".ndjson":
		return FormatJSONLines
	}
	return FormatJSON
}

// LoadStats reports what Decode did to the raw input.
type LoadStats struct {
	Events          int `json:"events"`
	Skipped         int `json:"skipped"`         // malformed lines
	AssignedIDs     int `json:"assigned_ids"`    // events that had no id
	Discontinuities int `json:"discontinuities"` // gaps marked
}

// Load reads and normalizes basal events from a file.
func Load(path string) ([]model.BasalEvent, LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, LoadStats{}, err
	}
	defer f.Close()
	return Decode(f, FormatFromPath(path))
}

// Decode reads basal events in the given format and normalizes them. A JSON
// document whose first byte is not '[' is read as JSON lines; malformed
// lines are skipped and counted rather than failing the whole load.
func Decode(r io.Reader, format Format) ([]model.BasalEvent, LoadStats, error) {
	var stats LoadStats
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, stats, fmt.Errorf("read events: %w", err)
	}

	var events []model.BasalEvent
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &events); err != nil {
			return nil, stats, fmt.Errorf("parse events yaml: %w", err)
		}
	default:
		trimmed := bytes.TrimSpace(data)
		if format == FormatJSON && len(trimmed) > 0 && trimmed[0] == '[' {
			if err := json.Unmarshal(trimmed, &events); err != nil {
				return nil, stats, fmt.Errorf("parse events json: %w", err)
			}
			break
		}
		events, stats.Skipped, err = decodeLines(trimmed)
		if err != nil {
			return nil, stats, fmt.Errorf("read event lines: %w", err)
		}
		if stats.Skipped > 0 {
			log.Printf("basalviz: warning: skipped %d malformed event lines", stats.Skipped)
		}
	}

	stats.AssignedIDs, stats.Discontinuities = Normalize(events)
	stats.Events = len(events)
	return events, stats, nil
}

func decodeLines(data []byte) ([]model.BasalEvent, int, error) {
	var events []model.BasalEvent
	skipped := 0
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		var e model.BasalEvent
		if err := json.Unmarshal(line, &e); err != nil {
			skipped++
			continue
		}
		events = append(events, e)
	}
	return events, skipped, sc.Err()
}

// Normalize prepares raw device data for the pipeline in place: it fills
// the type tag, maps the legacy deliveryType onto subType, gives every event
// an id, orders events by start time and flags gaps between neighbours.
// It returns the number of ids assigned and gaps marked.
func Normalize(events []model.BasalEvent) (assigned, gaps int) {
	for i := range events {
		e := &events[i]
		if e.Type == "" {
			e.Type = model.BasalType
		}
		if e.SubType == "" {
			e.SubType = e.DeliveryType
		}
		if e.ID == "" {
			e.ID = uuid.NewString()
			assigned++
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].UTC < events[j].UTC
	})

	for i := 1; i < len(events); i++ {
		prev, cur := &events[i-1], &events[i]
		if prev.End() != cur.UTC {
			if !prev.DiscontinuousEnd || !cur.DiscontinuousStart {
				gaps++
			}
			prev.DiscontinuousEnd = true
			cur.DiscontinuousStart = true
		}
	}
	return assigned, gaps
}
