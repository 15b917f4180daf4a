package main

import (
	"os"

	"github.com/SscSPs/bookkeeping_app/internal/commands"
)

// @title Bookkeeping API
// @version 1.0
// @description Journal posting and ledger balance service for a single set of books.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
