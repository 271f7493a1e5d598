// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"
)

// Every table holding tenant data must carry an org_id foreign key and a
// row-level security policy. New tenant-scoped tables get added here.
var tenantScopedTables = []string{
	"campaigns",
	"content_plans",
	"audiences",
	"social_accounts",
	"publish_jobs",
}

var dbAuditCmd = &cobra.Command{
	Use:   "audit-foreign-keys",
	Short: "Verify tenant isolation constraints on the database",
	Long:  `Check every tenant-scoped table for an org_id foreign key, row-level security and an isolation policy.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dsn, _ := cmd.Flags().GetString("dsn")

		config, err := pgx.ParseConfig(dsn)
		if err != nil {
			return fmt.Errorf("DSN validation failed: %v", err)
		}

		db := stdlib.OpenDB(*config)
		defer db.Close()

		if err := db.PingContext(cmd.Context()); err != nil {
			return fmt.Errorf("DB connection failed: %v", err)
		}

		findings, err := auditTenantTables(cmd.Context(), db, tenantScopedTables)
		if err != nil {
			return err
		}

		if len(findings) == 0 {
			cmd.Println("All tenant-scoped tables carry an org_id foreign key and an RLS policy")
			return nil
		}

		for _, finding := range findings {
			cmd.PrintErrln(finding)
		}
		return fmt.Errorf("%d tenant isolation finding(s)", len(findings))
	},
}

func init() {
	dbAuditCmd.Flags().String("dsn", "", "PostgreSQL DSN connection string")
	_ = dbAuditCmd.MarkFlagRequired("dsn")

	dbCmd.AddCommand(dbAuditCmd)
}

func auditTenantTables(ctx context.Context, db *sql.DB, tables []string) ([]string, error) {
	findings := []string{}

	for _, table := range tables {
		var hasFK bool
		err := db.QueryRowContext(ctx, `
			SELECT EXISTS (
				SELECT 1
				FROM information_schema.table_constraints tc
				JOIN information_schema.key_column_usage kcu
				  ON tc.constraint_name = kcu.constraint_name
				 AND tc.table_schema = kcu.table_schema
				WHERE tc.table_name = $1
				  AND tc.constraint_type = 'FOREIGN KEY'
				  AND kcu.column_name = 'org_id'
			)`, table).Scan(&hasFK)
		if err != nil {
			return nil, fmt.Errorf("failed to check foreign keys on %s: %w", table, err)
		}
		if !hasFK {
			findings = append(findings, fmt.Sprintf("%s: missing org_id foreign key", table))
		}

		var rlsEnabled bool
		err = db.QueryRowContext(ctx,
			`SELECT relrowsecurity FROM pg_class WHERE relname = $1 AND relkind = 'r'`,
			table).Scan(&rlsEnabled)
		if err != nil {
			return nil, fmt.Errorf("failed to check row security on %s: %w", table, err)
		}
		if !rlsEnabled {
			findings = append(findings, fmt.Sprintf("%s: row-level security not enabled", table))
		}

		var hasPolicy bool
		err = db.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM pg_policies WHERE tablename = $1)`,
			table).Scan(&hasPolicy)
		if err != nil {
			return nil, fmt.Errorf("failed to check policies on %s: %w", table, err)
		}
		if !hasPolicy {
			findings = append(findings, fmt.Sprintf("%s: no isolation policy", table))
		}
	}

	return findings, nil
}
