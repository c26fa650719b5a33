package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/frm/casemock/internal/domain"
)

// Dataset is a batch of generated fixtures for frontend development.
type Dataset struct {
	Cases       []domain.CaseSummary       `json:"cases"`
	CaseDetails []domain.CaseDetail        `json:"caseDetails"`
	CaseSummary []domain.CaseStatusSummary `json:"caseSummary"`
	Comments    []domain.Comment           `json:"comments"`
	Customers   []domain.Customer          `json:"customers"`
	Alerts      []domain.Alert             `json:"alerts"`
}

// Dataset synthesises count records of every entity plus one status summary
// per case status. It respects context cancellation.
func (g *Generator) Dataset(ctx context.Context, count int) (Dataset, error) {
	count = max(count, 0)
	ds := Dataset{
		Cases:       make([]domain.CaseSummary, 0, count),
		CaseDetails: make([]domain.CaseDetail, 0, count),
		Comments:    make([]domain.Comment, 0, count),
		Customers:   make([]domain.Customer, 0, count),
		Alerts:      make([]domain.Alert, 0, count),
	}
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return Dataset{}, err
		}
		ds.Cases = append(ds.Cases, g.CaseSummary())
		ds.CaseDetails = append(ds.CaseDetails, g.CaseDetail())
		ds.Comments = append(ds.Comments, g.Comment())
		ds.Customers = append(ds.Customers, g.Customer())
		ds.Alerts = append(ds.Alerts, g.Alert())
	}
	ds.CaseSummary = g.CaseStatusSummaries(len(domain.CaseStatuses))
	return ds, nil
}

// WriteDataset serializes each entity list into its own JSON file under dir,
// writing the files concurrently.
func WriteDataset(ctx context.Context, dataset Dataset, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	files := []struct {
		name string
		data any
	}{
		{"cases.json", dataset.Cases},
		{"case_details.json", dataset.CaseDetails},
		{"case_summary.json", dataset.CaseSummary},
		{"comments.json", dataset.Comments},
		{"customers.json", dataset.Customers},
		{"alerts.json", dataset.Alerts},
	}
	return runPool(ctx, defaultWorkers, len(files), func(idx int) error {
		return writeJSON(filepath.Join(dir, files[idx].name), files[idx].data)
	})
}

func writeJSON(path string, data any) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encode json for %s: %w", path, err)
	}
	return nil
}
