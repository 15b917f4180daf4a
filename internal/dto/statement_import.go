package dto

// ImportBalanceSheetResponse summarises what a balance-sheet import created.
type ImportBalanceSheetResponse struct {
	ChartsCreated   int      `json:"chartsCreated"`
	AccountsCreated int      `json:"accountsCreated"`
	BalancesSeeded  int      `json:"balancesSeeded"`
	Skipped         []string `json:"skipped,omitempty"`
}
