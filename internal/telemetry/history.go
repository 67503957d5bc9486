package telemetry

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/gocarina/gocsv"

	"github.com/appengine-ltd/plantagotchi/internal/engine"
	"github.com/appengine-ltd/plantagotchi/internal/game"
)

// DayRecord is one row of the per-day history export.
type DayRecord struct {
	Species            string `csv:"species"`
	Day                int    `csv:"day"`
	Stage              string `csv:"stage"`
	State              string `csv:"state"`
	Health             int    `csv:"health"`
	Water              int    `csv:"water"`
	Light              int    `csv:"light"`
	Temperature        int    `csv:"temperature"`
	N                  int    `csv:"n"`
	P                  int    `csv:"p"`
	K                  int    `csv:"k"`
	DryDays            int    `csv:"dry_days"`
	ColdDays           int    `csv:"cold_days"`
	NutrientStressDays int    `csv:"nutrient_stress_days"`
}

func recordFromSnapshot(s game.Snapshot) DayRecord {
	return DayRecord{
		Species:            string(s.SpeciesID),
		Day:                s.Day,
		Stage:              s.Stage,
		State:              string(s.PlantState),
		Health:             s.Health,
		Water:              s.Water,
		Light:              s.Light,
		Temperature:        s.Temperature,
		N:                  s.Nutrients.N,
		P:                  s.Nutrients.P,
		K:                  s.Nutrients.K,
		DryDays:            s.Stress.DryDays,
		ColdDays:           s.Stress.ColdDays,
		NutrientStressDays: s.Stress.NutrientStressDays,
	}
}

// History keeps one record per simulated day of the current run, plus the
// final snapshot. Selecting a species starts a new history.
type History struct {
	engine.NopListener

	mu      sync.Mutex
	records []DayRecord
	last    game.Snapshot
	sink    *CSVWriter
}

func NewHistory(sink *CSVWriter) *History {
	return &History{sink: sink}
}

func (h *History) OnSpeciesSelected(snap game.Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = h.records[:0]
	h.last = snap
}

func (h *History) OnSnapshotUpdated(snap game.Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	newDay := snap.Day > h.last.Day
	h.last = snap
	if !newDay {
		return
	}
	rec := recordFromSnapshot(snap)
	h.records = append(h.records, rec)
	if h.sink != nil {
		// The sink reports its own errors on Close.
		_ = h.sink.Write(rec)
	}
}

func (h *History) Records() []DayRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]DayRecord(nil), h.records...)
}

// Last returns the most recent snapshot seen.
func (h *History) Last() game.Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.last
}

// WriteCSV writes records with a header row.
func WriteCSV(w io.Writer, records []DayRecord) error {
	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("writing history: %w", err)
	}
	return nil
}

// CSVWriter streams day records to a file, writing the header once.
type CSVWriter struct {
	mu            sync.Mutex
	file          *os.File
	headerWritten bool
	err           error
}

// NewCSVWriter creates path. It returns nil when path is empty.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating history file: %w", err)
	}
	return &CSVWriter{file: f}, nil
}

func (w *CSVWriter) Write(rec DayRecord) error {
	if w == nil {
		return nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}

	records := []DayRecord{rec}
	var err error
	if !w.headerWritten {
		err = gocsv.Marshal(records, w.file)
		w.headerWritten = true
	} else {
		err = gocsv.MarshalWithoutHeaders(records, w.file)
	}
	if err != nil {
		w.err = fmt.Errorf("writing history: %w", err)
	}
	return w.err
}

func (w *CSVWriter) Close() error {
	if w == nil {
		return nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.file.Close(); err != nil && w.err == nil {
		w.err = err
	}
	return w.err
}
