// Package importer reads opening balance sheets used to seed a new set of books.
package importer

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrInvalidDocument is returned for a balance sheet that cannot be imported.
var ErrInvalidDocument = errors.New("invalid balance sheet")

const dateLayout = "2006-01-02"

// rawBalanceSheet is the YAML shape of a balance sheet.
type rawBalanceSheet struct {
	Date  string    `yaml:"date"`
	Heads []rawHead `yaml:"heads"`
}

type rawHead struct {
	Name     string       `yaml:"name"`
	Type     string       `yaml:"type"`
	Accounts []rawAccount `yaml:"accounts"`
}

type rawAccount struct {
	Name    string `yaml:"name"`
	Code    string `yaml:"code"`
	Balance string `yaml:"balance"`
	Side    string `yaml:"side"`
}

// BalanceSheet is a validated opening balance sheet.
type BalanceSheet struct {
	Date  time.Time
	Heads []Head
}

// Head is a chart head with the accounts listed under it.
type Head struct {
	Name        string
	AccountType domain.AccountType
	Accounts    []Account
}

// Account is one account line with its opening balance.
type Account struct {
	Name    string
	Code    string
	Balance domain.Balance
}

// Parse decodes and validates a YAML balance sheet.
func Parse(r io.Reader) (*BalanceSheet, error) {
	var raw rawBalanceSheet
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: document is empty", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("%w: failed to parse YAML: %v", ErrInvalidDocument, err)
	}

	date, err := time.Parse(dateLayout, strings.TrimSpace(raw.Date))
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD: %v", ErrInvalidDocument, err)
	}

	sheet := &BalanceSheet{Date: date, Heads: make([]Head, 0, len(raw.Heads))}
	seen := make(map[string]struct{})

	for _, rh := range raw.Heads {
		head := Head{
			Name:        strings.TrimSpace(rh.Name),
			AccountType: domain.AccountType(strings.ToUpper(strings.TrimSpace(rh.Type))),
		}
		if head.Name == "" {
			return nil, fmt.Errorf("%w: head without a name", ErrInvalidDocument)
		}
		if !head.AccountType.IsValid() {
			return nil, fmt.Errorf("%w: head %q has unknown type %q", ErrInvalidDocument, head.Name, rh.Type)
		}

		for _, ra := range rh.Accounts {
			acc, err := parseAccount(ra)
			if err != nil {
				return nil, fmt.Errorf("%w: head %q: %v", ErrInvalidDocument, head.Name, err)
			}
			if _, dup := seen[acc.Name]; dup {
				return nil, fmt.Errorf("%w: account %q listed twice", ErrInvalidDocument, acc.Name)
			}
			seen[acc.Name] = struct{}{}
			head.Accounts = append(head.Accounts, acc)
		}
		sheet.Heads = append(sheet.Heads, head)
	}

	return sheet, nil
}

func parseAccount(ra rawAccount) (Account, error) {
	acc := Account{
		Name: strings.TrimSpace(ra.Name),
		Code: strings.TrimSpace(ra.Code),
	}
	if acc.Name == "" {
		return acc, errors.New("account without a name")
	}

	amount := decimal.Zero
	if s := strings.TrimSpace(ra.Balance); s != "" {
		var err error
		if amount, err = decimal.NewFromString(s); err != nil {
			return acc, fmt.Errorf("account %q: balance %q is not a number", acc.Name, ra.Balance)
		}
	}
	if amount.IsNegative() {
		return acc, fmt.Errorf("account %q: balance must not be negative, use side Cr instead", acc.Name)
	}

	side := domain.BalanceDebit
	if s := strings.TrimSpace(ra.Side); s != "" {
		side = domain.BalanceType(strings.ToUpper(s[:1]) + strings.ToLower(s[1:]))
		if !side.IsValid() {
			return acc, fmt.Errorf("account %q: side must be Dr or Cr", acc.Name)
		}
	}

	acc.Balance = domain.Balance{Amount: amount, Type: side}
	return acc, nil
}

// Debit returns the debit side of the opening balance.
func (a Account) Debit() decimal.Decimal {
	if a.Balance.Type == domain.BalanceDebit {
		return a.Balance.Amount
	}
	return decimal.Zero
}

// Credit returns the credit side of the opening balance.
func (a Account) Credit() decimal.Decimal {
	if a.Balance.Type == domain.BalanceCredit {
		return a.Balance.Amount
	}
	return decimal.Zero
}
