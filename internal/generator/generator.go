package generator

import (
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/frm/casemock/internal/domain"
)

const (
	idMin = 1000
	idMax = 9999

	day = 24 * 60 * 60

	commentContent  = "This is a dummy comment content."
	caseAge         = "2 days"
	resolutionType  = "Resolved as False Positive"
	growthMagnitude = 20.0
)

// Generator produces randomized case management records. A Generator is not
// safe for concurrent use; build one per request with a Factory.
type Generator struct {
	rand *rand.Rand
	now  func() time.Time
}

// New returns a Generator drawing from src and reading time from now.
// A nil now falls back to time.Now.
func New(src rand.Source, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{
		rand: rand.New(src),
		now:  now,
	}
}

// Timestamp returns the current time in epoch seconds.
func (g *Generator) Timestamp() int64 {
	return g.now().Unix()
}

// CaseSummary returns a case created within the last 30 days.
func (g *Generator) CaseSummary() domain.CaseSummary {
	now := g.Timestamp()
	return domain.CaseSummary{
		ID:         g.id(),
		EntityID:   g.id(),
		CustomerID: g.id(),
		Status:     g.caseStatus(),
		Priority:   g.casePriority(),
		AssignedTo: g.id(),
		CreatedAt:  now - g.secondsWithin(30*day),
		UpdatedAt:  now,
	}
}

// CaseSummaries returns n independently generated cases.
func (g *Generator) CaseSummaries(n int) []domain.CaseSummary {
	cases := make([]domain.CaseSummary, 0, max(n, 0))
	for i := 0; i < n; i++ {
		cases = append(cases, g.CaseSummary())
	}
	return cases
}

// CaseStatusSummary returns a count and growth figure for a random status.
func (g *Generator) CaseStatusSummary() domain.CaseStatusSummary {
	growth := -growthMagnitude + g.rand.Float64()*2*growthMagnitude
	return domain.CaseStatusSummary{
		Status:        g.caseStatus(),
		Count:         g.intBetween(10, 100),
		GrowthPercent: decimal.NewFromFloat(growth).Round(2).InexactFloat64(),
	}
}

// CaseStatusSummaries returns n status summaries. Statuses may repeat.
func (g *Generator) CaseStatusSummaries(n int) []domain.CaseStatusSummary {
	summaries := make([]domain.CaseStatusSummary, 0, max(n, 0))
	for i := 0; i < n; i++ {
		summaries = append(summaries, g.CaseStatusSummary())
	}
	return summaries
}

// CaseDetail returns a full case with one linked case.
func (g *Generator) CaseDetail() domain.CaseDetail {
	now := g.Timestamp()
	return domain.CaseDetail{
		ID:             g.id(),
		EntityID:       g.id(),
		CustomerID:     g.id(),
		ParentAlertID:  g.id(),
		Status:         g.caseStatus(),
		Priority:       g.casePriority(),
		AssignedTo:     g.id(),
		Age:            caseAge,
		ResolutionType: resolutionType,
		LinkedCases: []domain.LinkedCase{
			{ID: g.id(), LinkedAt: now - g.secondsWithin(day)},
		},
		CreatedAt: now - g.secondsWithin(30*day),
		UpdatedAt: now,
	}
}

// Comment returns a comment written within the last day.
func (g *Generator) Comment() domain.Comment {
	now := g.Timestamp()
	return domain.Comment{
		ID:        g.id(),
		AuthorID:  g.id(),
		Header:    domain.CommentHeaders[g.rand.Intn(len(domain.CommentHeaders))],
		Content:   commentContent,
		CreatedAt: now - g.secondsWithin(day),
		UpdatedAt: now,
	}
}

// Comments returns n independently generated comments.
func (g *Generator) Comments(n int) []domain.Comment {
	comments := make([]domain.Comment, 0, max(n, 0))
	for i := 0; i < n; i++ {
		comments = append(comments, g.Comment())
	}
	return comments
}

// Customer returns the sample customer with fresh ids and timestamps.
func (g *Generator) Customer() domain.Customer {
	now := g.Timestamp()
	return domain.Customer{
		ID:          g.id(),
		Name:        "John Doe",
		Email:       "john.doe@example.com",
		DOB:         "01-01-1990",
		PhoneNumber: "+1234567890",
		AccountID:   g.id(),
		CreatedAt:   now - g.secondsWithin(365*day),
		UpdatedAt:   now,
	}
}

// Alert returns an alert carrying a single anomaly.
func (g *Generator) Alert() domain.Alert {
	return domain.Alert{
		ID:            g.id(),
		TransactionID: g.id(),
		Anomalies: []domain.Anomaly{
			{
				ID:          g.id(),
				Title:       "Suspicious Transaction Pattern",
				Description: "Multiple high-value transactions in short time period",
				Expression:  "tx_count > 5 AND tx_value > 1000",
			},
		},
		Payload: domain.AlertPayload{
			Amount:   g.intBetween(1000, 10000),
			Currency: "USD",
			Merchant: "Example Merchant",
		},
		CaseStatus: domain.AlertCaseStatuses[g.rand.Intn(len(domain.AlertCaseStatuses))],
		CreatedAt:  g.Timestamp(),
	}
}

func (g *Generator) id() int {
	return g.intBetween(idMin, idMax)
}

// intBetween is inclusive on both ends.
func (g *Generator) intBetween(lo, hi int) int {
	return lo + g.rand.Intn(hi-lo+1)
}

// secondsWithin returns an offset in [0, window] seconds.
func (g *Generator) secondsWithin(window int64) int64 {
	return g.rand.Int63n(window + 1)
}

func (g *Generator) caseStatus() domain.CaseStatus {
	return domain.CaseStatuses[g.rand.Intn(len(domain.CaseStatuses))]
}

func (g *Generator) casePriority() domain.CasePriority {
	return domain.CasePriorities[g.rand.Intn(len(domain.CasePriorities))]
}
