// export-order-lines writes every order item as one spreadsheet row.
//
// Usage:
//
//	go run ./cmd/export-order-lines --out order-lines.xlsx
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/shynebeauty/shyne_backend/config"
	"github.com/shynebeauty/shyne_backend/middlewares"
	"github.com/shynebeauty/shyne_backend/models/reports"
)

func main() {
	out := flag.String("out", "order-lines.xlsx", "Output .xlsx path")
	databaseURL := flag.String("database-url", config.DatabaseURL(), "Database url (sqlite://... or mysql://...)")
	flag.Parse()

	if strings.TrimSpace(*out) == "" {
		fmt.Fprintln(os.Stderr, "--out is required")
		os.Exit(1)
	}

	db, err := config.OpenDatabase(*databaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open database: %v\n", err)
		os.Exit(1)
	}
	config.SetDB(db)

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create %s: %v\n", *out, err)
		os.Exit(1)
	}
	ctx := middlewares.WithLoaders(context.Background(), middlewares.NewLoaders(db))
	if err := reports.ExportOrderLines(ctx, f); err != nil {
		_ = f.Close()
		config.LogError(config.GetLogger(), "export-order-lines", "main", "export order lines", *out, err)
		fmt.Fprintf(os.Stderr, "export failed: %v\n", err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", *out)
}
