package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plan4you/plan-advisor/internal/catalog"
	"github.com/plan4you/plan-advisor/internal/config"
	"github.com/plan4you/plan-advisor/internal/db"
	"github.com/plan4you/plan-advisor/internal/eligibility"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load reference data into the database",
}

var loadCatalogCmd = &cobra.Command{
	Use:   "catalog <benefits.csv>",
	Short: "Load benefit records from a marketplace benefits CSV",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoadCatalog,
}

var loadEligibilityCmd = &cobra.Command{
	Use:   "eligibility <thresholds.csv>",
	Short: "Load Medicaid and CHIP income thresholds from a CSV",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoadEligibility,
}

func init() {
	loadCmd.AddCommand(loadCatalogCmd)
	loadCmd.AddCommand(loadEligibilityCmd)
	rootCmd.AddCommand(loadCmd)
}

func openDatabase(cmd *cobra.Command) (*db.DB, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("database URL is required (set PLAN_ADVISOR_DATABASE_URL)")
	}

	database, err := db.Connect(cmd.Context(), cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(cmd.Context()); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return database, nil
}

func runLoadCatalog(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	records, err := catalog.ParseBenefitsCSV(f)
	if err != nil {
		return fmt.Errorf("failed to parse benefits CSV: %w", err)
	}
	records = catalog.Normalize(records)

	database, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer database.Close()

	inserted, err := database.BulkInsertBenefits(cmd.Context(), records)
	if err != nil {
		return fmt.Errorf("failed to insert benefit records: %w", err)
	}
	fmt.Printf("Loaded %d benefit records from %s\n", inserted, args[0])
	return nil
}

func runLoadEligibility(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	levels, err := eligibility.ParseThresholdsCSV(f)
	if err != nil {
		return fmt.Errorf("failed to parse thresholds CSV: %w", err)
	}

	database, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.UpsertEligibilityLevels(cmd.Context(), levels); err != nil {
		return fmt.Errorf("failed to upsert eligibility levels: %w", err)
	}
	fmt.Printf("Loaded eligibility thresholds for %d states from %s\n", len(levels), args[0])
	return nil
}
