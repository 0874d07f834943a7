package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/spacesim/internal/physics"
	"github.com/san-kum/spacesim/internal/sim"
	"github.com/san-kum/spacesim/internal/vec"
)

var csvHeader = []string{"step", "time", "index", "x", "y", "vx", "vy", "mass", "radius"}

// Record is one entity of one frame, flattened for CSV and JSON.
type Record struct {
	Step   int     `json:"step"`
	Time   float64 `json:"time"`
	Index  int     `json:"index"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	VX     float64 `json:"vx"`
	VY     float64 `json:"vy"`
	Mass   float64 `json:"mass"`
	Radius float64 `json:"radius"`
}

func Records(frames []sim.Frame) []Record {
	n := 0
	for _, f := range frames {
		n += len(f.Entities)
	}
	out := make([]Record, 0, n)
	for _, f := range frames {
		for i, e := range f.Entities {
			out = append(out, Record{
				Step: f.Step, Time: f.Time, Index: i,
				X: e.Position.X, Y: e.Position.Y,
				VX: e.Velocity.X, VY: e.Velocity.Y,
				Mass: e.Mass, Radius: e.Radius,
			})
		}
	}
	return out
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteCSV writes one row per entity per frame.
func WriteCSV(w io.Writer, frames []sim.Frame) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range Records(frames) {
		row := []string{
			strconv.Itoa(r.Step), formatFloat(r.Time), strconv.Itoa(r.Index),
			formatFloat(r.X), formatFloat(r.Y),
			formatFloat(r.VX), formatFloat(r.VY),
			formatFloat(r.Mass), formatFloat(r.Radius),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV rebuilds frames written by WriteCSV. Rows are grouped into
// frames by their step column.
func ReadCSV(r io.Reader) ([]sim.Frame, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []sim.Frame{}, nil
	}

	frames := make([]sim.Frame, 0)
	for line, rec := range records[1:] {
		step, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("storage: line %d: bad step: %w", line+2, err)
		}
		vals := make([]float64, 0, 7)
		for _, field := range []string{rec[1], rec[3], rec[4], rec[5], rec[6], rec[7], rec[8]} {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("storage: line %d: %w", line+2, err)
			}
			vals = append(vals, v)
		}

		if len(frames) == 0 || frames[len(frames)-1].Step != step {
			frames = append(frames, sim.Frame{Step: step, Time: vals[0]})
		}
		f := &frames[len(frames)-1]
		f.Entities = append(f.Entities, physics.New(vec.New(vals[1], vals[2]), vec.New(vals[3], vals[4]), vals[5], vals[6]))
	}
	return frames, nil
}

type ExportData struct {
	Run     RunMetadata `json:"run"`
	Records []Record    `json:"frames"`
}

func ExportJSON(w io.Writer, meta RunMetadata, frames []sim.Frame) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{Run: meta, Records: Records(frames)})
}
