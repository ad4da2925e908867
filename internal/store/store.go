package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/atharvRsharma/Pendulums/internal/chain"
	"github.com/atharvRsharma/Pendulums/internal/sim"
)

// Store persists headless runs as one directory each: metadata.json plus
// angles.csv (time, theta/omega per link) and trace.csv (terminal path).
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Dt        float64            `json:"dt"`
	Duration  float64            `json:"duration"`
	Links     int                `json:"links"`
	Steps     int                `json:"steps"`
	Seed      int64              `json:"seed"`
	Diverged  bool               `json:"diverged"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes one run and returns its generated ID.
func (s *Store) Save(dt, duration float64, links int, seed int64, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("chain%d_%d", links, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Dt:        dt,
		Duration:  duration,
		Links:     links,
		Steps:     result.StepsTaken,
		Seed:      seed,
		Diverged:  result.Diverged,
		Metrics:   result.Metrics,
	}

	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}
	if err := writeAngles(filepath.Join(runDir, "angles.csv"), result); err != nil {
		return "", err
	}
	if err := writeTrace(filepath.Join(runDir, "trace.csv"), result.Trace); err != nil {
		return "", err
	}

	return runID, nil
}

func writeJSON(path string, meta RunMetadata) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func writeAngles(path string, result *sim.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if len(result.Angles) == 0 {
		return nil
	}

	header := []string{"time"}
	for i := 0; i < len(result.Angles[0])/2; i++ {
		header = append(header, fmt.Sprintf("theta%d", i), fmt.Sprintf("omega%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, row := range result.Angles {
		rec := []string{strconv.FormatFloat(result.Times[i], 'f', 6, 64)}
		for _, val := range row {
			rec = append(rec, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func writeTrace(path string, trace []chain.Point) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for _, p := range trace {
		rec := []string{
			strconv.FormatFloat(p.X, 'f', 6, 64),
			strconv.FormatFloat(p.Y, 'f', 6, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// List returns metadata for every stored run.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("corrupt metadata for %s: %w", runID, err)
	}
	return &meta, nil
}

// LoadAngles returns the stored per-step angle rows and their times.
func (s *Store) LoadAngles(runID string) ([][]float64, []float64, error) {
	records, err := readCSV(filepath.Join(s.baseDir, runID, "angles.csv"))
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return [][]float64{}, []float64{}, nil
	}

	times := make([]float64, 0, len(records)-1)
	rows := make([][]float64, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) < 2 {
			continue
		}
		t, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			continue
		}
		row := make([]float64, 0, len(rec)-1)
		for _, field := range rec[1:] {
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				continue
			}
			row = append(row, val)
		}
		times = append(times, t)
		rows = append(rows, row)
	}
	return rows, times, nil
}

// LoadTrace returns the stored terminal path, oldest first.
func (s *Store) LoadTrace(runID string) ([]chain.Point, error) {
	records, err := readCSV(filepath.Join(s.baseDir, runID, "trace.csv"))
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []chain.Point{}, nil
	}

	points := make([]chain.Point, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) < 2 {
			continue
		}
		x, errX := strconv.ParseFloat(rec[0], 64)
		y, errY := strconv.ParseFloat(rec[1], 64)
		if errX != nil || errY != nil {
			continue
		}
		points = append(points, chain.Point{X: x, Y: y})
	}
	return points, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

// ExportJSON writes a run's metadata and trace to stdout as one JSON
// document.
func ExportJSON(meta *RunMetadata, trace []chain.Point) error {
	out := struct {
		Meta  *RunMetadata  `json:"metadata"`
		Trace []chain.Point `json:"trace"`
	}{meta, trace}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
