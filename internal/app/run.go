package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/specialistvlad/mgcards/internal/cards"
	"github.com/specialistvlad/mgcards/internal/ctxlog"
)

// Run loads the setup and writes every requested card.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	setup, err := a.LoadSetup(ctx)
	if err != nil {
		return err
	}

	sample, err := a.sampleBenchmark(setup)
	if err != nil {
		return err
	}
	a.logger.Info("Sample benchmark selected.", "benchmark", sample.Name)

	if a.config.ParamTemplate != "" {
		if _, err := cards.ExportParamCard(ctx, a.config.ParamTemplate, a.config.ProcessDir, a.config.ParamCard, sample, setup); err != nil {
			return fmt.Errorf("failed to export param card: %w", err)
		}
	} else {
		a.logger.Debug("No param card template given, skipping param card.")
	}

	if _, err := cards.ExportReweightCard(ctx, sample.Name, a.config.ProcessDir, a.config.ReweightCard, setup); err != nil {
		return fmt.Errorf("failed to export reweight card: %w", err)
	}

	if a.config.RunTemplate != "" {
		runCard := a.config.RunCard
		if runCard == "" {
			runCard = filepath.Join(a.config.ProcessDir, "Cards", "run_card.dat")
		}
		if err := cards.ExportRunCard(ctx, a.config.RunTemplate, runCard, setup.Systematics, cards.Order(a.config.Order)); err != nil {
			return fmt.Errorf("failed to export run card: %w", err)
		}
	} else {
		a.logger.Debug("No run card template given, skipping run card.")
	}

	a.logger.Info("🏁 Cards exported.")
	a.logger.Debug("App.Run method finished.")
	return nil
}
