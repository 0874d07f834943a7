package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"k8s.io/klog/v2"

	"github.com/san-kum/spacesim/internal/sim"
)

const (
	metadataFile = "metadata.json"
	framesFile   = "frames.csv"
)

// Store records finished runs under baseDir, one directory per run.
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
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Timestamp     time.Time          `json:"timestamp"`
	Seed          int64              `json:"seed"`
	Dt            float64            `json:"dt"`
	Duration      float64            `json:"duration"`
	Count         int                `json:"count"`
	G             float64            `json:"g"`
	Gravity       bool               `json:"gravity"`
	Collisions    bool               `json:"collisions"`
	Walls         bool               `json:"walls"`
	Steps         int                `json:"steps"`
	Frames        int                `json:"frames"`
	CollisionHits int                `json:"collision_count"`
	WallHits      int                `json:"wall_hits"`
	EnergyDrift   float64            `json:"energy_drift"`
	MomentumDrift float64            `json:"momentum_drift"`
	Metrics       map[string]float64 `json:"metrics"`
}

// NewMetadata summarises a finished run.
func NewMetadata(name string, cfg sim.Config, result *sim.Result) RunMetadata {
	count := 0
	if len(result.Frames) > 0 {
		count = len(result.Frames[0].Entities)
	}
	return RunMetadata{
		Name:          name,
		Timestamp:     time.Now(),
		Seed:          cfg.Seed,
		Dt:            cfg.Dt,
		Duration:      cfg.Duration,
		Count:         count,
		G:             cfg.Physics.G,
		Gravity:       cfg.Physics.Gravity,
		Collisions:    cfg.Physics.Collisions,
		Walls:         cfg.Physics.Walls,
		Steps:         result.StepsTaken,
		Frames:        len(result.Frames),
		CollisionHits: result.Collisions,
		WallHits:      result.WallHits,
		EnergyDrift:   result.EnergyDrift,
		MomentumDrift: result.MomentumDrift,
		Metrics:       result.Metrics,
	}
}

// Save writes the run under a new directory. On failure the directory is
// removed so List never sees a partial run.
func (s *Store) Save(name string, cfg sim.Config, result *sim.Result) (id string, err error) {
	meta := NewMetadata(name, cfg, result)
	meta.ID = fmt.Sprintf("%s_%d", name, meta.Timestamp.UnixNano())
	runDir := filepath.Join(s.baseDir, meta.ID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			os.RemoveAll(runDir)
		}
	}()

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, framesFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteCSV(csvFile, result.Frames); err != nil {
		return "", err
	}

	klog.V(2).Infof("storage: saved run %s (%d frames)", meta.ID, len(result.Frames))
	return meta.ID, nil
}

// List returns saved runs, oldest first. Directories without readable
// metadata are skipped.
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
			klog.V(4).Infof("storage: skipping %s: %v", entry.Name(), err)
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadFrames(runID string) ([]sim.Frame, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, framesFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadCSV(file)
}
