package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/plan4you/plan-advisor/internal/catalog"
	"github.com/plan4you/plan-advisor/internal/config"
	"github.com/plan4you/plan-advisor/internal/db"
	"github.com/plan4you/plan-advisor/internal/eligibility"
	"github.com/plan4you/plan-advisor/internal/filtering"
	"github.com/plan4you/plan-advisor/internal/llm"
	"github.com/plan4you/plan-advisor/internal/ranking"
	"github.com/plan4you/plan-advisor/internal/recommend"
	"github.com/plan4you/plan-advisor/internal/types"
)

var (
	recName       string
	recAge        int
	recDependents int
	recIncome     float64
	recState      string
	recDental     bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Run the recommendation pipeline once from the command line",
	RunE:  runRecommend,
}

func init() {
	recommendCmd.Flags().StringVar(&recName, "name", "", "Applicant name")
	recommendCmd.Flags().IntVar(&recAge, "age", 0, "Applicant age")
	recommendCmd.Flags().IntVar(&recDependents, "dependents", 0, "Number of dependents in the household")
	recommendCmd.Flags().Float64Var(&recIncome, "income", 0, "Annual household income in USD")
	recommendCmd.Flags().StringVar(&recState, "state", "", "Two-letter state code, e.g. FL")
	recommendCmd.Flags().BoolVar(&recDental, "dental", false, "Require dental coverage")
	_ = recommendCmd.MarkFlagRequired("name")
	_ = recommendCmd.MarkFlagRequired("state")
	_ = recommendCmd.MarkFlagRequired("income")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.ValidateForServe(); err != nil {
		return err
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()

	database, err := db.Connect(ctx, cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	profile := types.UserProfile{
		Name:           recName,
		Age:            recAge,
		Dependents:     recDependents,
		Income:         recIncome,
		State:          recState,
		DentalRequired: recDental,
	}
	state := profile.NormalizedState()

	// The catalog rows and the threshold row are independent queries.
	var records []types.BenefitRecord
	var thresholds *eligibility.Thresholds

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = database.FindBenefitsByState(gctx, state)
		return err
	})
	g.Go(func() error {
		var err error
		thresholds, err = database.GetEligibilityLevels(gctx, state)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to query reference data: %w", err)
	}

	classifier := eligibility.NewClassifier(cfg.Poverty, logger)
	elig, err := classifier.Classify(profile, thresholds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: no eligibility data for %s, assuming no public assistance\n", state)
	}

	fmt.Printf("%s, your household size is %d and your income is %.1f%% of the federal poverty level.\n",
		profile.Name, elig.HouseholdSize, elig.FPLPercent)

	candidates := filtering.Candidates(catalog.Normalize(records), profile, elig)
	if len(candidates) == 0 {
		fmt.Println("No matching plans found based on your criteria.")
		return nil
	}

	top := ranking.Top(ranking.Score(candidates), ranking.TopPlanLimit)
	plans := ranking.ProjectTop(candidates, top)

	fmt.Printf("Top %d plans matching your criteria:\n", len(top))
	for _, sp := range top {
		fmt.Printf("  %s (score %d)\n", sp.PlanID, sp.Score)
	}

	client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.Gemini.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create generator client: %w", err)
	}
	defer func() { _ = client.Close() }()

	orchestrator := recommend.NewOrchestrator(client, logger, cfg.Gemini.CallTimeout)
	result, err := orchestrator.Recommend(ctx, profile, plans)
	if err != nil {
		return err
	}

	if result.Fallback {
		fmt.Fprintf(os.Stderr, "Warning: AI analysis unavailable (%v); showing fallback ranking\n", result.AnalysisErr)
	}

	out, err := json.MarshalIndent(result.Recommendation, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
