package batch

import (
	"auction-etl/internal/etlerrors"
	extract "auction-etl/internal/extractService"
	"auction-etl/internal/normalize"
	"auction-etl/internal/repository"
	"auction-etl/internal/tables"
	"auction-etl/utils"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/shopspring/decimal"
)

// BatchReport summarizes one driver run
type BatchReport struct {
	RunID      string               `json:"run_id"`
	Files      []extract.FileReport `json:"files"`
	Skipped    []string             `json:"skipped"`
	Items      int                  `json:"items"`
	Bids       int                  `json:"bids"`
	Categories int                  `json:"categories"`
	Users      int                  `json:"users"`
	BidVolume  decimal.Decimal      `json:"bid_volume"`
}

// Driver runs the extractor over a list of candidate paths
type Driver struct {
	mu     sync.Mutex
	layout tables.Layout
	out    io.Writer
	dir    atomic.Pointer[repository.MemoryDirectory]
}

// NewDriver creates a Driver writing tables under layout and success lines to out
func NewDriver(layout tables.Layout, out io.Writer) *Driver {
	d := &Driver{
		layout: layout,
		out:    out,
	}
	d.dir.Store(repository.NewMemoryDirectory())
	return d
}

// Directory returns the user directory of the most recent run
func (d *Driver) Directory() repository.UserDirectory {
	return d.dir.Load()
}

// Run clears the output tables, then extracts every path that names a .json file, in order.
// The first failing file stops the run; rows already written are kept.
func (d *Driver) Run(paths []string) (BatchReport, error) {
	if !d.mu.TryLock() {
		return BatchReport{}, fmt.Errorf("batch: %w", etlerrors.ErrBatchInProgress)
	}
	defer d.mu.Unlock()

	report := BatchReport{
		RunID:     utils.GenerateRunID(),
		Files:     []extract.FileReport{},
		Skipped:   []string{},
		BidVolume: decimal.Zero,
	}

	if err := d.layout.Reset(); err != nil {
		return report, fmt.Errorf("batch: %w", err)
	}
	if len(paths) < 1 {
		return report, fmt.Errorf("batch: %w", etlerrors.ErrNoInputFiles)
	}

	dir := repository.LoadDirectory(d.layout.UsersPath())
	d.dir.Store(dir)
	extractor := extract.NewExtractor(d.layout, dir)

	utils.Info("batch started", map[string]any{"run_id": report.RunID, "candidates": len(paths), "output_dir": d.layout.Dir})

	for _, path := range paths {
		if !normalize.IsJSONFile(path) {
			report.Skipped = append(report.Skipped, path)
			utils.Debug("skipping non-json argument", map[string]any{"run_id": report.RunID, "path": path})
			continue
		}

		fileReport, err := extractor.ExtractFile(path)
		report.add(fileReport)
		if err != nil {
			utils.Error("batch aborted", map[string]any{"run_id": report.RunID, "path": path, "error": err.Error()})
			return report, fmt.Errorf("batch: %w", err)
		}

		fmt.Fprintf(d.out, "Success parsing %s\n", path)
	}

	utils.Info("batch finished", map[string]any{
		"run_id":     report.RunID,
		"files":      len(report.Files),
		"skipped":    len(report.Skipped),
		"items":      report.Items,
		"users":      report.Users,
		"bid_volume": report.BidVolume.String(),
	})
	return report, nil
}

func (r *BatchReport) add(f extract.FileReport) {
	r.Files = append(r.Files, f)
	r.Items += f.Items
	r.Bids += f.Bids
	r.Categories += f.Categories
	r.Users = f.Users
	r.BidVolume = r.BidVolume.Add(f.BidVolume)
}
