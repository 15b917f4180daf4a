package models

import "time"

// Chart is a row of the charts table.
type Chart struct {
	ChartID     int64     `db:"chart_id"`
	UserID      string    `db:"user_id"`
	Name        string    `db:"name"`
	AccountType string    `db:"account_type"`
	Date        time.Time `db:"date"`
	AuditFields
}

// Account is a row of the accounts table. HeadName and AccountType are copied from the chart on insert.
type Account struct {
	AccountID   int64  `db:"account_id"`
	UserID      string `db:"user_id"`
	Name        string `db:"name"`
	ChartID     int64  `db:"chart_id"`
	HeadName    string `db:"head_name"`
	AccountType string `db:"account_type"`
	Code        string `db:"code"` // Empty when the account has no code
	AuditFields
}
