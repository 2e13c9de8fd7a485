package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/itsjaydesu/jayfolio-sub000/config"
)

// OutputManager writes run output as CSV files in one directory.
type OutputManager struct {
	dir        string
	perfFile   *os.File
	fieldFile  *os.File
	effectFile *os.File

	// Track if headers have been written
	perfHeaderWritten   bool
	fieldHeaderWritten  bool
	effectHeaderWritten bool
}

// NewOutputManager creates the output directory and its files.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}
	files := []struct {
		name string
		dst  **os.File
	}{
		{"perf.csv", &om.perfFile},
		{"field.csv", &om.fieldFile},
		{"effects.csv", &om.effectFile},
	}
	for _, f := range files {
		fh, err := os.Create(filepath.Join(dir, f.name))
		if err != nil {
			om.Close()
			return nil, fmt.Errorf("creating %s: %w", f.name, err)
		}
		*f.dst = fh
	}
	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// writeRecords marshals records to f, with a header row only on first use.
func writeRecords[T any](f *os.File, headerWritten *bool, records []T) error {
	if !*headerWritten {
		if err := gocsv.Marshal(records, f); err != nil {
			return err
		}
		*headerWritten = true
		return nil
	}
	return gocsv.MarshalWithoutHeaders(records, f)
}

// WritePerf writes a performance stats record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, frame int64) error {
	if om == nil {
		return nil
	}
	if err := writeRecords(om.perfFile, &om.perfHeaderWritten, []PerfStatsCSV{stats.ToCSV(frame)}); err != nil {
		return fmt.Errorf("writing perf: %w", err)
	}
	return nil
}

// WriteField writes a window stats record to field.csv.
func (om *OutputManager) WriteField(stats FieldStats) error {
	if om == nil {
		return nil
	}
	if err := writeRecords(om.fieldFile, &om.fieldHeaderWritten, []FieldStats{stats}); err != nil {
		return fmt.Errorf("writing field stats: %w", err)
	}
	return nil
}

// WriteEffect appends an effect event to effects.csv.
func (om *OutputManager) WriteEffect(ev EffectEvent) error {
	if om == nil {
		return nil
	}
	if err := writeRecords(om.effectFile, &om.effectHeaderWritten, []EffectEvent{ev}); err != nil {
		return fmt.Errorf("writing effect event: %w", err)
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	for _, f := range []**os.File{&om.perfFile, &om.fieldFile, &om.effectFile} {
		if *f == nil {
			continue
		}
		if err := (*f).Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		*f = nil
	}
	return firstErr
}
