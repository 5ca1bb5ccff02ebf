// Command verify checks that the console can reach its database and that
// the core tables are in place.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"coreid/internal/platform/config"
	"coreid/internal/platform/postgres"
)

const connectTimeout = 15 * time.Second

var coreTables = []string{"profiles", "endorsements"}

// tableCheck reports why table is unusable, or nil.
type tableCheck func(ctx context.Context, table string) error

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "verify",
		Short:         "Verify database connectivity and core tables",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "❌ %v\n", err)
				return err
			}
			return run(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

func run(ctx context.Context, cfg config.Config, out, errOut io.Writer) error {
	if missing := cfg.MissingCredentials(); len(missing) > 0 {
		err := fmt.Errorf("missing credentials: %s", strings.Join(missing, ", "))
		fmt.Fprintf(errOut, "❌ %v\n", err)
		return err
	}
	fmt.Fprintf(out, "Project: %s\n", cfg.Supabase.URL)

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	db, err := postgres.Open(connectCtx, cfg.Database)
	if err != nil {
		fmt.Fprintf(out, "❌ connection: %v\n", err)
		printSummary(out, 0, len(coreTables))
		return nil
	}
	defer db.Close()
	fmt.Fprintln(out, "✅ connection: OK")

	check := func(ctx context.Context, table string) error {
		return postgres.TableExists(ctx, db, table)
	}
	passed := checkTables(ctx, out, coreTables, check)
	printSummary(out, passed, len(coreTables))
	return nil
}

// checkTables prints one line per table and returns how many passed.
func checkTables(ctx context.Context, out io.Writer, tables []string, check tableCheck) int {
	passed := 0
	for _, table := range tables {
		if err := check(ctx, table); err != nil {
			fmt.Fprintf(out, "❌ %s table: %v\n", table, err)
			continue
		}
		fmt.Fprintf(out, "✅ %s table: OK\n", table)
		passed++
	}
	return passed
}

func printSummary(out io.Writer, passed, total int) {
	if passed == total {
		fmt.Fprintf(out, "\nAll %d checks passed\n", total)
		return
	}
	fmt.Fprintf(out, "\n%d of %d checks passed\n", passed, total)
}
