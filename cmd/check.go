package cmd

import (
	"log/slog"
	"os"

	"github.com/migrasafe/migrasafe/pkg/analyzer"
	"github.com/migrasafe/migrasafe/pkg/config"
	"github.com/migrasafe/migrasafe/pkg/logger"
	"github.com/migrasafe/migrasafe/pkg/render"
	"github.com/migrasafe/migrasafe/pkg/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <migration-files...>",
	Short: "Check migration files for risky operations",
	Long: `Check one or more migration files against the risk rule catalog.

Findings across all files are combined into a single report with a total
risk score. The command exits with a non-zero status when the total score
reaches the threshold, so it can gate a deployment pipeline.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	// Flags for check command
	checkCmd.Flags().IntP("threshold", "t", config.DefaultThreshold, "block if total risk score >= threshold")
	checkCmd.Flags().StringP("output", "o", "table", "output format (table, json, yaml)")
	checkCmd.Flags().StringP("rules", "r", "", "path to rules configuration file")
	checkCmd.Flags().Bool("no-django", false, "disable Django-specific rules")

	// Bind flags to viper
	_ = viper.BindPFlag("threshold", checkCmd.Flags().Lookup("threshold"))
	_ = viper.BindPFlag("output", checkCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("rules", checkCmd.Flags().Lookup("rules"))
	_ = viper.BindPFlag("no-django", checkCmd.Flags().Lookup("no-django"))
}

func runCheck(cmd *cobra.Command, args []string) error {
	// Initialize logger
	logLevel := slog.LevelWarn
	if viper.GetBool("debug") {
		logLevel = slog.LevelDebug
	} else if viper.GetBool("verbose") {
		logLevel = slog.LevelInfo
	}
	log := logger.NewWithLevel(logLevel)
	slog.SetDefault(log.GetSlogLogger())

	slog.Debug("starting check command", "args", args)

	// Load rules configuration
	cfg := config.Default()
	if rulesPath := viper.GetString("rules"); rulesPath != "" {
		loaded, err := config.LoadFromFile(rulesPath)
		if err != nil {
			slog.Error("failed to load rules configuration", "error", err)
			return err
		}
		cfg = loaded
	}

	// Flags override the rules file when set explicitly.
	threshold := cfg.Threshold
	if cmd.Flags().Changed("threshold") {
		threshold = viper.GetInt("threshold")
	}
	format := cfg.Format
	if cmd.Flags().Changed("output") {
		format = viper.GetString("output")
	}
	noDjango := cfg.NoDjango || viper.GetBool("no-django")

	var opts []analyzer.Option
	if noDjango {
		opts = append(opts, analyzer.WithoutDjangoRules())
	}
	if len(cfg.DisabledRules) > 0 {
		opts = append(opts, analyzer.WithDisabledRules(cfg.DisabledRules...))
	}

	// Analyze each file; read errors abort the run.
	var results []*types.AnalysisResult
	for _, path := range args {
		slog.Debug("analyzing migration file", "file", path)
		result, err := analyzer.AnalyzeFile(path, opts...)
		if err != nil {
			slog.Error("analysis failed", "file", path, "error", err)
			return err
		}
		slog.Debug("file analyzed", "file", path, "findings", len(result.Findings), "score", result.TotalScore())
		results = append(results, result)
	}

	batch := types.NewBatchResult(results...)
	if err := render.Render(os.Stdout, format, batch, threshold); err != nil {
		return err
	}

	if !batch.Passed(threshold) {
		os.Exit(1)
	}
	return nil
}
