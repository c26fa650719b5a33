package domain

// AlertCaseStatus records whether an alert needs a case opened.
type AlertCaseStatus string

const (
	AlertCaseRequired    AlertCaseStatus = "REQUIRED"
	AlertCaseNotRequired AlertCaseStatus = "NOT_REQUIRED"
)

// AlertCaseStatuses lists both alert case states.
var AlertCaseStatuses = []AlertCaseStatus{AlertCaseRequired, AlertCaseNotRequired}

// Anomaly is a detection rule that fired for an alert.
type Anomaly struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Expression  string `json:"expression"`
}

// AlertPayload describes the transaction that raised the alert.
type AlertPayload struct {
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
	Merchant string `json:"merchant"`
}

// Alert is a monitoring hit on a transaction.
type Alert struct {
	ID            int             `json:"id"`
	TransactionID int             `json:"transactionId"`
	Anomalies     []Anomaly       `json:"anomalies"`
	Payload       AlertPayload    `json:"payload"`
	CaseStatus    AlertCaseStatus `json:"caseStatus"`
	CreatedAt     int64           `json:"createdAt"`
}
