package generator

import (
	"context"
	"encoding/json"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frm/casemock/internal/domain"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestGenerator(seed int64) *Generator {
	return New(rand.NewSource(seed), func() time.Time { return fixedNow })
}

func assertID(t *testing.T, id int) {
	t.Helper()
	assert.GreaterOrEqual(t, id, 1000)
	assert.LessOrEqual(t, id, 9999)
}

func TestTimestamp(t *testing.T) {
	g := newTestGenerator(1)
	assert.Equal(t, fixedNow.Unix(), g.Timestamp())
}

func TestSameSeedSameOutput(t *testing.T) {
	a := newTestGenerator(7)
	b := newTestGenerator(7)

	assert.Equal(t, a.CaseSummaries(10), b.CaseSummaries(10))
	assert.Equal(t, a.CaseDetail(), b.CaseDetail())
	assert.Equal(t, a.Alert(), b.Alert())
}

func TestCaseSummaryRanges(t *testing.T) {
	g := newTestGenerator(11)
	now := fixedNow.Unix()

	for _, c := range g.CaseSummaries(500) {
		assertID(t, c.ID)
		assertID(t, c.EntityID)
		assertID(t, c.CustomerID)
		assertID(t, c.AssignedTo)
		assert.Contains(t, domain.CaseStatuses, c.Status)
		assert.Contains(t, domain.CasePriorities, c.Priority)
		assert.Equal(t, now, c.UpdatedAt)
		assert.LessOrEqual(t, c.CreatedAt, now)
		assert.GreaterOrEqual(t, c.CreatedAt, now-30*day)
	}
}

func TestCaseSummariesNonPositive(t *testing.T) {
	g := newTestGenerator(1)
	assert.Empty(t, g.CaseSummaries(0))
	assert.NotNil(t, g.CaseSummaries(-3))
}

func TestCaseStatusSummaryRanges(t *testing.T) {
	g := newTestGenerator(3)

	for _, s := range g.CaseStatusSummaries(500) {
		assert.Contains(t, domain.CaseStatuses, s.Status)
		assert.GreaterOrEqual(t, s.Count, 10)
		assert.LessOrEqual(t, s.Count, 100)
		assert.GreaterOrEqual(t, s.GrowthPercent, -20.0)
		assert.LessOrEqual(t, s.GrowthPercent, 20.0)
		assert.InDelta(t, math.Round(s.GrowthPercent*100)/100, s.GrowthPercent, 1e-9, "growth %v has more than 2 decimals", s.GrowthPercent)
	}
}

func TestCaseDetail(t *testing.T) {
	g := newTestGenerator(5)
	now := fixedNow.Unix()

	d := g.CaseDetail()
	assertID(t, d.ID)
	assertID(t, d.ParentAlertID)
	assert.Equal(t, "2 days", d.Age)
	assert.Equal(t, "Resolved as False Positive", d.ResolutionType)
	require.Len(t, d.LinkedCases, 1)
	assertID(t, d.LinkedCases[0].ID)
	assert.GreaterOrEqual(t, d.LinkedCases[0].LinkedAt, now-day)
	assert.LessOrEqual(t, d.LinkedCases[0].LinkedAt, now)
}

func TestComment(t *testing.T) {
	g := newTestGenerator(9)
	now := fixedNow.Unix()

	for _, c := range g.Comments(200) {
		assertID(t, c.ID)
		assertID(t, c.AuthorID)
		assert.Contains(t, domain.CommentHeaders, c.Header)
		assert.Equal(t, "This is a dummy comment content.", c.Content)
		assert.GreaterOrEqual(t, c.CreatedAt, now-day)
		assert.Equal(t, now, c.UpdatedAt)
	}
}

func TestCustomer(t *testing.T) {
	g := newTestGenerator(2)

	c := g.Customer()
	assertID(t, c.ID)
	assertID(t, c.AccountID)
	assert.Equal(t, "John Doe", c.Name)
	assert.Equal(t, "john.doe@example.com", c.Email)
	assert.Equal(t, "01-01-1990", c.DOB)
	assert.Equal(t, "+1234567890", c.PhoneNumber)
	assert.GreaterOrEqual(t, c.CreatedAt, fixedNow.Unix()-365*day)
}

func TestAlert(t *testing.T) {
	g := newTestGenerator(4)

	for i := 0; i < 200; i++ {
		a := g.Alert()
		assertID(t, a.ID)
		assertID(t, a.TransactionID)
		require.Len(t, a.Anomalies, 1)
		assertID(t, a.Anomalies[0].ID)
		assert.Equal(t, "tx_count > 5 AND tx_value > 1000", a.Anomalies[0].Expression)
		assert.GreaterOrEqual(t, a.Payload.Amount, 1000)
		assert.LessOrEqual(t, a.Payload.Amount, 10000)
		assert.Equal(t, "USD", a.Payload.Currency)
		assert.Contains(t, domain.AlertCaseStatuses, a.CaseStatus)
		assert.Equal(t, fixedNow.Unix(), a.CreatedAt)
	}
}

func TestFactorySeeded(t *testing.T) {
	f := NewFactory(99, func() time.Time { return fixedNow })
	assert.Equal(t, f.New().CaseDetail(), f.New().CaseDetail())
}

func TestFactoryUnseededUsesClockTime(t *testing.T) {
	f := NewFactory(0, func() time.Time { return fixedNow })
	assert.Equal(t, fixedNow.Unix(), f.New().Timestamp())
}

func TestDatasetAndWrite(t *testing.T) {
	g := newTestGenerator(21)

	ds, err := g.Dataset(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, ds.Cases, 3)
	assert.Len(t, ds.Alerts, 3)
	assert.Len(t, ds.CaseSummary, len(domain.CaseStatuses))

	dir := filepath.Join(t.TempDir(), "fixtures")
	require.NoError(t, WriteDataset(context.Background(), ds, dir))

	raw, err := os.ReadFile(filepath.Join(dir, "comments.json"))
	require.NoError(t, err)
	var comments []domain.Comment
	require.NoError(t, json.Unmarshal(raw, &comments))
	assert.Equal(t, ds.Comments, comments)

	for _, name := range []string{"cases.json", "case_details.json", "case_summary.json", "customers.json", "alerts.json"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
}

func TestDatasetCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestGenerator(1).Dataset(ctx, 10)
	assert.ErrorIs(t, err, context.Canceled)
}
