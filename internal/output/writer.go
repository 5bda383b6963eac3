package output

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/rpgchess/internal/config"
)

// ReportWriter is the interface for writing position reports.
type ReportWriter interface {
	// WriteReport writes a single report to the output.
	WriteReport(r *PositionReport) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer. For batch writers (like JSON), this also
	// writes any pending output.
	Close() error
}

// NewReportWriter picks the writer cfg asks for.
func NewReportWriter(w io.Writer, cfg *config.OutputConfig) ReportWriter {
	switch {
	case cfg.JSONLines:
		return NewJSONWriterSingle(w)
	case cfg.JSONFormat:
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes human-readable reports. Each report is assembled in a
// buffer and handed to the underlying writer in one piece.
type TextWriter struct {
	w   *bufio.Writer
	cfg *config.OutputConfig
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.OutputConfig) *TextWriter {
	return &TextWriter{w: bufio.NewWriter(w), cfg: cfg}
}

// WriteReport writes a report as text, followed by a blank line. It returns
// the first write error; once one occurs every later call returns it too.
func (tw *TextWriter) WriteReport(r *PositionReport) error {
	tw.writeReport(r)
	return tw.w.Flush()
}

func (tw *TextWriter) writeReport(r *PositionReport) {
	if r.Source != "" {
		fmt.Fprintf(tw.w, "# %d %s\n", r.Index, r.Source)
	} else {
		fmt.Fprintf(tw.w, "# %d\n", r.Index)
	}
	fmt.Fprintf(tw.w, "FEN: %s\n", r.FEN)
	if r.Failed() {
		fmt.Fprintf(tw.w, "error: %s\n\n", r.Error)
		return
	}

	if tw.cfg.ShowBoard {
		fmt.Fprint(tw.w, r.Board)
	}
	fmt.Fprintf(tw.w, "To move: %s\n", r.ToMove)
	fmt.Fprintf(tw.w, "Status: %s\n", r.Status)
	if r.Plies > 0 {
		fmt.Fprintf(tw.w, "Replayed: %d plies", r.Plies)
		if len(r.Flags) > 0 {
			fmt.Fprintf(tw.w, " (%s)", strings.Join(r.Flags, ", "))
		}
		fmt.Fprintln(tw.w)
	}

	lw := NewLineWriter(tw.w, int(tw.cfg.MaxLineLength), "    ")
	for _, pm := range r.Moves {
		lw.WriteNoSpace(string(pm.pieceCode) + tw.square(pm.From, pm.FromRC.String()) + ":")
		for i := range pm.To {
			lw.Write(tw.square(pm.To[i], pm.ToRC[i].String()))
		}
		lw.NewLine()
	}

	fmt.Fprintf(tw.w, "Moves: %d\n", r.MoveCount)
	if r.PerftDepth > 0 {
		fmt.Fprintf(tw.w, "Perft(%d): %d\n", r.PerftDepth, r.Perft)
	}
	fmt.Fprintln(tw.w)
}

func (tw *TextWriter) square(name, rowCol string) string {
	if tw.cfg.Format == config.RowCol {
		return rowCol
	}
	return name
}

// Flush writes out anything still buffered.
func (tw *TextWriter) Flush() error {
	return tw.w.Flush()
}

// Close flushes the text writer.
func (tw *TextWriter) Close() error {
	return tw.Flush()
}

// JSONOutput holds multiple reports for array output.
type JSONOutput struct {
	Positions []*PositionReport `json:"positions"`
}

// JSONWriter writes reports in JSON format.
// It buffers reports and writes them as one document on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	reports []*PositionReport
	single  bool // If true, write each report immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches reports and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:       w,
		reports: make([]*PositionReport, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each report
// immediately, one document per line.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteReport buffers a report (or writes it immediately in single mode).
func (jw *JSONWriter) WriteReport(r *PositionReport) error {
	if jw.single {
		return json.NewEncoder(jw.w).Encode(r)
	}
	jw.reports = append(jw.reports, r)
	return nil
}

// Flush writes all buffered reports as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.reports) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Positions: jw.reports})

	// Clear buffer after writing
	jw.reports = jw.reports[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
