// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/spf13/cobra"
)

// dbCmd groups the database maintenance commands
var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database maintenance commands",
	Long:  `Backup and restore the database using the PostgreSQL client tools.`,
}

var dbBackupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Dump the database to a gzipped SQL file",
	Long:  `Dump the database to a gzipped SQL file using pg_dump. Requires pg_dump on the PATH.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dsn, _ := cmd.Flags().GetString("dsn")
		out, _ := cmd.Flags().GetString("out")

		if out == "" {
			out = backupFileName(time.Now())
		}

		if err := runBackup(cmd, dsn, out); err != nil {
			return err
		}

		cmd.Printf("Backup written to %s\n", out)
		return nil
	},
}

var dbRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore the database from a gzipped SQL file",
	Long:  `Restore the database from a gzipped SQL file using psql. Requires psql on the PATH.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dsn, _ := cmd.Flags().GetString("dsn")
		file, _ := cmd.Flags().GetString("file")

		if err := runRestore(cmd, dsn, file); err != nil {
			return err
		}

		cmd.Printf("Restored from %s\n", file)
		return nil
	},
}

func init() {
	dbBackupCmd.Flags().String("dsn", "", "PostgreSQL DSN connection string")
	dbBackupCmd.Flags().String("out", "", "Output file (defaults to a timestamped name)")
	_ = dbBackupCmd.MarkFlagRequired("dsn")

	dbRestoreCmd.Flags().String("dsn", "", "PostgreSQL DSN connection string")
	dbRestoreCmd.Flags().String("file", "", "Backup file to restore")
	_ = dbRestoreCmd.MarkFlagRequired("dsn")
	_ = dbRestoreCmd.MarkFlagRequired("file")

	dbCmd.AddCommand(dbBackupCmd)
	dbCmd.AddCommand(dbRestoreCmd)
	rootCmd.AddCommand(dbCmd)
}

func backupFileName(now time.Time) string {
	return fmt.Sprintf("campaigns-backup-%s.sql.gz", now.UTC().Format("20060102T150405"))
}

func runBackup(cmd *cobra.Command, dsn, out string) error {
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	defer f.Close()

	gz := gzip.NewWriter(f)

	dump := exec.CommandContext(cmd.Context(), "pg_dump", "--dbname", dsn, "--no-owner", "--clean", "--if-exists")
	dump.Stdout = gz
	dump.Stderr = cmd.ErrOrStderr()

	if err := dump.Run(); err != nil {
		_ = gz.Close()
		_ = os.Remove(out)
		return fmt.Errorf("pg_dump failed: %w", err)
	}

	if err := gz.Close(); err != nil {
		return fmt.Errorf("failed to finalize backup file: %w", err)
	}

	return f.Sync()
}

func runRestore(cmd *cobra.Command, dsn, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open backup file: %w", err)
	}
	defer f.Close()

	var in io.Reader = f
	gz, err := gzip.NewReader(f)
	if err == nil {
		defer gz.Close()
		in = gz
	} else {
		// Plain SQL dumps restore as-is.
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return fmt.Errorf("failed to rewind backup file: %w", err)
		}
	}

	restore := exec.CommandContext(cmd.Context(), "psql", "--dbname", dsn, "--single-transaction", "--set", "ON_ERROR_STOP=1")
	restore.Stdin = in
	restore.Stdout = io.Discard
	restore.Stderr = cmd.ErrOrStderr()

	if err := restore.Run(); err != nil {
		return fmt.Errorf("psql restore failed: %w", err)
	}

	return nil
}
