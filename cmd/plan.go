package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/YashRawat0947/SIH-2025/core/optimizer"
	"github.com/YashRawat0947/SIH-2025/core/planner"
	"github.com/YashRawat0947/SIH-2025/core/predictor"
	"github.com/YashRawat0947/SIH-2025/infra/logger"
	"github.com/YashRawat0947/SIH-2025/infra/metrics"
	"github.com/YashRawat0947/SIH-2025/internal/dataset"
)

var (
	planDataPath string
	planTarget   int
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Run one planning cycle over a dataset and print the ranked list",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVar(&planDataPath, "data", "", "train dataset file (JSON)")
	planCmd.Flags().IntVarP(&planTarget, "target", "t", 0, "target induction count (0 uses the configured default)")
	_ = planCmd.MarkFlagRequired("data")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New("plan-command")

	sink, err := metrics.New(cfg.Metrics)
	if err != nil {
		return fmt.Errorf("metrics sinks: %w", err)
	}
	if cfg.Metrics.PrometheusEnabled {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		go func() {
			if err := metrics.StartPromServer(ctx, cfg.Metrics.PrometheusAddr); err != nil {
				log.Errorf("prometheus exposition server: %v", err)
			}
		}()
	}

	trains, err := dataset.Load(planDataPath)
	if err != nil {
		return err
	}

	pred := predictor.New(log)
	if _, err := pred.Load(cfg.Model.Path); err != nil {
		// A broken artifact is not fatal for planning: the rule-based
		// fallback still produces usable propensities.
		log.Warnf("model load failed, using rule-based predictions: %v", err)
	}

	opt := optimizer.New(cfg.Optimizer, log)
	session := planner.NewSession(pred, opt, log, sink)

	out, err := session.Plan(trains, planTarget)
	if err != nil {
		return err
	}
	ranked, err := session.Ranking()
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		SessionID string `json:"session_id"`
		Status    string `json:"status"`
		Fallback  bool   `json:"fallback"`
		Summary   any    `json:"summary"`
		Ranking   any    `json:"ranking"`
	}{
		SessionID: session.ID(),
		Status:    string(out.Status),
		Fallback:  out.Fallback,
		Summary:   out.Summary,
		Ranking:   ranked,
	})
}
