package domain

// CaseStatus is the lifecycle state of a case.
type CaseStatus string

const (
	CaseStatusNew        CaseStatus = "NEW"
	CaseStatusInProgress CaseStatus = "IN_PROGRESS"
	CaseStatusResolved   CaseStatus = "RESOLVED"
	CaseStatusEscalated  CaseStatus = "ESCALATED"
	CaseStatusClosed     CaseStatus = "CLOSED"
)

// CaseStatuses lists every status in display order.
var CaseStatuses = []CaseStatus{
	CaseStatusNew,
	CaseStatusInProgress,
	CaseStatusResolved,
	CaseStatusEscalated,
	CaseStatusClosed,
}

// CasePriority ranks how urgently a case should be worked.
type CasePriority string

const (
	CasePriorityHigh   CasePriority = "High"
	CasePriorityMedium CasePriority = "Medium"
	CasePriorityLow    CasePriority = "Low"
)

// CasePriorities lists every priority from most to least urgent.
var CasePriorities = []CasePriority{
	CasePriorityHigh,
	CasePriorityMedium,
	CasePriorityLow,
}

// CaseSummary is the list view of a case.
type CaseSummary struct {
	ID         int          `json:"id"`
	EntityID   int          `json:"entityId"`
	CustomerID int          `json:"customerId"`
	Status     CaseStatus   `json:"status"`
	Priority   CasePriority `json:"priority"`
	AssignedTo int          `json:"assignedTo"`
	CreatedAt  int64        `json:"createdAt"`
	UpdatedAt  int64        `json:"updatedAt"`
}

// CaseStatusSummary aggregates case counts for one status.
type CaseStatusSummary struct {
	Status        CaseStatus `json:"status"`
	Count         int        `json:"count"`
	GrowthPercent float64    `json:"growthPercent"`
}

// LinkedCase references another case associated with a case.
type LinkedCase struct {
	ID       int   `json:"id"`
	LinkedAt int64 `json:"linkedAt"`
}

// CaseDetail is the full view of a single case.
type CaseDetail struct {
	ID             int          `json:"id"`
	EntityID       int          `json:"entityId"`
	CustomerID     int          `json:"customerId"`
	ParentAlertID  int          `json:"parentAlertId"`
	Status         CaseStatus   `json:"status"`
	Priority       CasePriority `json:"priority"`
	AssignedTo     int          `json:"assignedTo"`
	Age            string       `json:"age"`
	ResolutionType string       `json:"resolutionType"`
	LinkedCases    []LinkedCase `json:"linkedCases"`
	CreatedAt      int64        `json:"createdAt"`
	UpdatedAt      int64        `json:"updatedAt"`
}
