package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/venuebook/config"
	"github.com/shashiranjanraj/venuebook/database/seeders"
	"github.com/shashiranjanraj/venuebook/pkg/database"
	"github.com/shashiranjanraj/venuebook/pkg/migration"
)

func bootDB() error {
	if err := config.Load(); err != nil {
		return err
	}
	return database.Connect()
}

func runner(cmd *cobra.Command) *migration.Runner {
	return migration.New(database.DB).WithOutput(cmd.OutOrStdout())
}

// venuebook migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run all pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Running migrations...")
		return runner(cmd).Run()
	},
}

// venuebook migrate:rollback
var migrateRollbackCmd = &cobra.Command{
	Use:   "migrate:rollback",
	Short: "Roll back the last batch of migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Rolling back last batch...")
		return runner(cmd).Rollback()
	},
}

// venuebook migrate:status
var migrateStatusCmd = &cobra.Command{
	Use:   "migrate:status",
	Short: "Show the status of each migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		return runner(cmd).Status()
	},
}

// venuebook seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the demo admin, user, venues and news",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Running seeders...")
		return seeders.RunAll(cmd.Context(), database.DB, cmd.OutOrStdout())
	},
}
