package domain

// Pagination describes one page of a list response.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// NewPagination computes the page count by ceiling division. It does not
// clamp its inputs; a non-positive pageSize yields zero pages.
func NewPagination(page, pageSize, totalItems int) Pagination {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalItems + pageSize - 1) / pageSize
	}
	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}
