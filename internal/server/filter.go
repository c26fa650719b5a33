package server

import (
	"sort"
	"strconv"
	"strings"

	"github.com/frm/casemock/internal/domain"
)

type caseFilter struct {
	Status   string
	Priority string
	Search   string
}

// filterCases keeps exact status and priority matches and, when search is
// set, cases whose id or entity id contains it. Filtering reuses the input
// backing array.
func filterCases(cases []domain.CaseSummary, f caseFilter) []domain.CaseSummary {
	search := strings.TrimSpace(f.Search)
	if f.Status == "" && f.Priority == "" && search == "" {
		return cases
	}

	kept := cases[:0]
	for _, c := range cases {
		if f.Status != "" && string(c.Status) != f.Status {
			continue
		}
		if f.Priority != "" && string(c.Priority) != f.Priority {
			continue
		}
		if search != "" && !strings.Contains(strconv.Itoa(c.ID), search) && !strings.Contains(strconv.Itoa(c.EntityID), search) {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// sortCases orders by createdAt or updatedAt, newest first unless order is
// "asc". Unknown fields leave the generated order alone.
func sortCases(cases []domain.CaseSummary, field, order string) {
	var key func(domain.CaseSummary) int64
	switch field {
	case "createdAt":
		key = func(c domain.CaseSummary) int64 { return c.CreatedAt }
	case "updatedAt":
		key = func(c domain.CaseSummary) int64 { return c.UpdatedAt }
	default:
		return
	}

	asc := strings.EqualFold(order, "asc")
	sort.SliceStable(cases, func(i, j int) bool {
		if asc {
			return key(cases[i]) < key(cases[j])
		}
		return key(cases[i]) > key(cases[j])
	})
}
