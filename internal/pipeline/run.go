package pipeline

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/go-kit/log"

	"statmerge/internal/dump"
	"statmerge/internal/stat"
)

// Config parameterizes one end-to-end merge run.
type Config struct {
	// FirstPath and SecondPath are the source dumps; OutPath is the sink.
	// The sink file must already exist (the CLI creates it).
	FirstPath  string
	SecondPath string
	OutPath    string

	// PreviewLines caps the rendered preview. Zero means
	// DefaultPreviewLines; negative disables the preview entirely.
	PreviewLines int

	// Buckets overrides the merge table's bucket count. Zero means
	// stat.DefaultBuckets. Must be a power of two.
	Buckets int

	// Less orders the merged output. Nil means ascending cost.
	Less func(a, b stat.Record) int

	// Preview receives the rendered table. Nil disables the preview.
	Preview io.Writer

	// Logger receives progress diagnostics. Nil means no logging.
	Logger log.Logger
}

// Result summarizes a completed run for the caller's status surface.
type Result struct {
	FirstCount  int
	SecondCount int
	MergedCount int

	// Warnings holds non-fatal conditions (empty source dumps).
	Warnings []string
}

// LessByCost is the default output ordering: ascending cost.
func LessByCost(a, b stat.Record) int {
	return cmp.Compare(a.Cost, b.Cost)
}

// Run loads both sources, joins them, sorts the union, renders a bounded
// preview, and stores the result. An empty source is a warning, not an
// error: the run proceeds with whichever side holds records. Every other
// load, join, or store failure aborts the run.
//
// The sort is stable over the materialization order, so an unchanged pair
// of inputs always produces the same output sequence.
func Run(cfg Config) (Result, error) {
	res := Result{}

	logger := cfg.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}

	first, warn, err := loadSide(cfg.FirstPath)
	if err != nil {
		return res, err
	}

	if warn != "" {
		res.Warnings = append(res.Warnings, warn)
	}

	second, warn, err := loadSide(cfg.SecondPath)
	if err != nil {
		return res, err
	}

	if warn != "" {
		res.Warnings = append(res.Warnings, warn)
	}

	res.FirstCount = len(first)
	res.SecondCount = len(second)

	_ = logger.Log("msg", "loaded dumps",
		"first", cfg.FirstPath, "first_records", len(first),
		"second", cfg.SecondPath, "second_records", len(second))

	merged, err := Join(first, second, stat.TableOptions{Buckets: cfg.Buckets})
	if err != nil {
		return res, err
	}

	less := cfg.Less
	if less == nil {
		less = LessByCost
	}

	slices.SortStableFunc(merged, less)
	res.MergedCount = len(merged)

	_ = logger.Log("msg", "joined dumps", "records", len(merged))

	if cfg.Preview != nil && cfg.PreviewLines >= 0 {
		lines := cfg.PreviewLines
		if lines == 0 {
			lines = DefaultPreviewLines
		}

		view, err := NewRecordView()
		if err != nil {
			return res, err
		}

		err = view.Render(cfg.Preview, merged, lines)
		if err != nil {
			return res, fmt.Errorf("%w: render preview: %v", stat.ErrIO, err)
		}
	}

	err = dump.Store(cfg.OutPath, merged)
	if err != nil {
		return res, err
	}

	_ = logger.Log("msg", "stored dump", "path", cfg.OutPath, "records", len(merged))

	return res, nil
}

// loadSide loads one source dump, downgrading an empty file to a warning.
func loadSide(path string) ([]stat.Record, string, error) {
	records, err := dump.Load(path)
	if err != nil {
		if errors.Is(err, stat.ErrEmptyFile) {
			return nil, fmt.Sprintf("empty dump: %s", path), nil
		}

		return nil, "", err
	}

	return records, "", nil
}
