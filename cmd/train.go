package cmd

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/YashRawat0947/SIH-2025/core/predictor"
	"github.com/YashRawat0947/SIH-2025/infra/logger"
	"github.com/YashRawat0947/SIH-2025/internal/dataset"
)

var (
	trainDataPath string
	trainSeed     int64
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the induction model on a dataset and save the artifact",
	RunE:  runTrain,
}

func init() {
	trainCmd.Flags().StringVar(&trainDataPath, "data", "", "train dataset file (JSON)")
	trainCmd.Flags().Int64Var(&trainSeed, "seed", 0, "random seed (0 uses a time-based seed)")
	_ = trainCmd.MarkFlagRequired("data")
	rootCmd.AddCommand(trainCmd)
}

func runTrain(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New("train-command")

	trains, err := dataset.Load(trainDataPath)
	if err != nil {
		return err
	}

	var rng *rand.Rand
	if trainSeed != 0 {
		rng = rand.New(rand.NewSource(trainSeed))
	}

	pred := predictor.New(log)
	report, err := pred.Train(trains, nil, rng)
	if err != nil {
		return err
	}
	log.Infof("accuracy %.3f, cross-validation %.3f±%.3f", report.Accuracy, report.CVMean, report.CVStd)
	for i, fw := range report.FeatureImportance {
		if i >= 5 {
			break
		}
		log.Infof("feature %d: %s (%.3f)", i+1, fw.Name, fw.Weight)
	}
	return pred.Save(cfg.Model.Path)
}
