// Package storage persists process and cycle runs under a data directory,
// one subdirectory per run with a metadata.json and a trajectory.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Tycho887/FYSLAB/internal/cycle"
	"github.com/Tycho887/FYSLAB/internal/thermo"
)

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
	ID                    string    `json:"id"`
	Mode                  string    `json:"mode"` // "process" or "cycle"
	Kind                  string    `json:"kind"`
	Gas                   string    `json:"gas,omitempty"`
	Timestamp             time.Time `json:"timestamp"`
	Steps                 int       `json:"steps"`
	Moles                 float64   `json:"moles"`
	WorkDoneBy            float64   `json:"work_done_by"`
	HeatAbsorbed          float64   `json:"heat_absorbed"`
	Efficiency            float64   `json:"efficiency,omitempty"`
	TheoreticalEfficiency float64   `json:"theoretical_efficiency,omitempty"`
	FirstLawSatisfied     bool      `json:"first_law_satisfied"`
	IdealGas              bool      `json:"ideal_gas"`
}

// Series are the per-index columns written to trajectory.csv.
type Series struct {
	Volume         []float64
	Pressure       []float64
	Temperature    []float64
	InternalEnergy []float64
	Entropy        []float64
}

// ProcessSeries flattens a generated process into storable columns.
func ProcessSeries(pr *thermo.Process) Series {
	return Series{
		Volume:         pr.Traj.Volume,
		Pressure:       pr.Traj.Pressure,
		Temperature:    pr.Traj.Temperature,
		InternalEnergy: pr.Derived.InternalEnergy,
		Entropy:        pr.Derived.Entropy,
	}
}

// CycleSeries concatenates a run cycle's four processes into one series.
func CycleSeries(c *cycle.Cycle) Series {
	var out Series
	for _, pr := range c.Processes {
		s := ProcessSeries(pr)
		out.Volume = append(out.Volume, s.Volume...)
		out.Pressure = append(out.Pressure, s.Pressure...)
		out.Temperature = append(out.Temperature, s.Temperature...)
		out.InternalEnergy = append(out.InternalEnergy, s.InternalEnergy...)
		out.Entropy = append(out.Entropy, s.Entropy...)
	}
	return out
}

// Save writes the run and returns its generated ID.
func (s *Store) Save(meta RunMetadata, series Series) (string, error) {
	runID := fmt.Sprintf("%s_%d", meta.Kind, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()
	meta.Steps = len(series.Volume)

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trajectory.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"volume", "pressure", "temperature", "internal_energy", "entropy"}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i := range series.Volume {
		row := []string{
			strconv.FormatFloat(series.Volume[i], 'g', -1, 64),
			strconv.FormatFloat(series.Pressure[i], 'g', -1, 64),
			strconv.FormatFloat(series.Temperature[i], 'g', -1, 64),
			strconv.FormatFloat(series.InternalEnergy[i], 'g', -1, 64),
			strconv.FormatFloat(series.Entropy[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

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

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
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
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadSeries(runID string) (*Series, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return &Series{}, nil
	}

	out := &Series{}
	for _, record := range records[1:] {
		if len(record) < 5 {
			continue
		}
		vals := make([]float64, 5)
		ok := true
		for j := 0; j < 5; j++ {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				ok = false
				break
			}
			vals[j] = v
		}
		if !ok {
			continue
		}
		out.Volume = append(out.Volume, vals[0])
		out.Pressure = append(out.Pressure, vals[1])
		out.Temperature = append(out.Temperature, vals[2])
		out.InternalEnergy = append(out.InternalEnergy, vals[3])
		out.Entropy = append(out.Entropy, vals[4])
	}

	return out, nil
}
