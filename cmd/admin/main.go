package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/imoveis/internal/config"
	"github.com/localnerve/imoveis/internal/database"
	"github.com/localnerve/imoveis/internal/routes"
	"github.com/localnerve/imoveis/internal/utils"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "imoveis-admin",
		Short: "Administrative tasks for the imoveis service",
	}

	rootCmd.AddCommand(
		migrateCmd(),
		routesCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the tables of every entity",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			utils.InitLogger(cfg.AppName+"-admin", cfg.LogLevel)

			db, err := database.Connect(cfg)
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := database.AutoMigrate(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Migrated %s\n", database.Describe(cfg))
			return nil
		},
	}
}

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the resource routes served under /api",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fiber.New(fiber.Config{DisableStartupMessage: true})
			routes.Register(app.Group("/api"), routes.Table(nil))

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, r := range app.GetRoutes(true) {
				if r.Method == fiber.MethodHead {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\n", r.Method, r.Path)
			}
			return w.Flush()
		},
	}
}
