package domain

import "time"

// Chart is a classification head (e.g. "Current Asset") grouping accounts.
type Chart struct {
	ChartID     int64       `json:"chartID"`
	UserID      string      `json:"userID"`
	Name        string      `json:"name"`
	AccountType AccountType `json:"accountType"`
	Date        time.Time   `json:"date"`
	AuditFields
}
