package domain

// Customer is the account holder a case concerns.
type Customer struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	DOB         string `json:"dob"` // dd-mm-yyyy
	PhoneNumber string `json:"phoneNumber"`
	AccountID   int    `json:"accountId"`
	CreatedAt   int64  `json:"createdAt"`
	UpdatedAt   int64  `json:"updatedAt"`
}
