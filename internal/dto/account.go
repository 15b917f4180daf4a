package dto

import (
	"time"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
)

// CreateChartRequest defines the data needed to create a chart head.
type CreateChartRequest struct {
	Name        string             `json:"name" binding:"required"`
	AccountType domain.AccountType `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	Date        *time.Time         `json:"date"` // Optional, defaults to now
}

// ChartResponse defines the data returned for a chart head.
type ChartResponse struct {
	ChartID     int64              `json:"chartID"`
	Name        string             `json:"name"`
	AccountType domain.AccountType `json:"accountType"`
	Date        time.Time          `json:"date"`
}

// ListChartsResponse wraps the list of chart heads.
type ListChartsResponse struct {
	Charts []ChartResponse `json:"charts"`
}

// ToChartResponse converts a domain.Chart to ChartResponse DTO
func ToChartResponse(c *domain.Chart) ChartResponse {
	return ChartResponse{
		ChartID:     c.ChartID,
		Name:        c.Name,
		AccountType: c.AccountType,
		Date:        c.Date,
	}
}

// ToListChartsResponse converts a slice of domain.Chart to ListChartsResponse
func ToListChartsResponse(charts []domain.Chart) ListChartsResponse {
	res := make([]ChartResponse, len(charts))
	for i := range charts {
		res[i] = ToChartResponse(&charts[i])
	}
	return ListChartsResponse{Charts: res}
}

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name    string `json:"name" binding:"required"`
	ChartID int64  `json:"chartID" binding:"required,gt=0"`
	Code    string `json:"code" binding:"omitempty,numeric"` // Optional numeric code
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     int64              `json:"accountID"`
	Name          string             `json:"name"`
	ChartID       int64              `json:"chartID"`
	HeadName      string             `json:"headName"`
	AccountType   domain.AccountType `json:"accountType"`
	Code          string             `json:"code,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		Name:          acc.Name,
		ChartID:       acc.ChartID,
		HeadName:      acc.HeadName,
		AccountType:   acc.AccountType,
		Code:          acc.Code,
		CreatedAt:     acc.CreatedAt,
		LastUpdatedAt: acc.LastUpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
