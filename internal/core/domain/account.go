package domain

// AccountType defines the fundamental accounting classification of a chart head.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// IsValid reports whether t is one of the five known classifications.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// Account represents a postable account within the chart of accounts.
// HeadName and AccountType are denormalized from the owning Chart for display.
type Account struct {
	AccountID   int64       `json:"accountID"`
	UserID      string      `json:"userID"`
	Name        string      `json:"name"`
	ChartID     int64       `json:"chartID"`
	HeadName    string      `json:"headName"`
	AccountType AccountType `json:"accountType"`
	Code        string      `json:"code,omitempty"` // Optional numeric code
	AuditFields
}
