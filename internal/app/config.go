package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/mgcards/internal/cards"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SetupPath  string // .hcl / .yaml files or a directory of them
	ProcessDir string // generator process directory, cards go to <ProcessDir>/Cards

	ParamTemplate   string
	ParamCard       string
	RunTemplate     string
	RunCard         string
	ReweightCard    string
	SampleBenchmark string
	Order           string

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.SetupPath == "" {
		return nil, errors.New("SetupPath is a required configuration field and cannot be empty")
	}

	if cfg.Order == "" {
		cfg.Order = string(cards.OrderLO)
	}
	order, err := cards.ParseOrder(cfg.Order)
	if err != nil {
		return nil, err
	}
	cfg.Order = string(order)

	if cfg.ProcessDir == "" {
		if cfg.ReweightCard == "" {
			return nil, errors.New("either a process directory or an explicit reweight card path is required")
		}
		if cfg.ParamTemplate != "" && cfg.ParamCard == "" {
			return nil, errors.New("a param card template needs a process directory or an explicit param card path")
		}
		if cfg.RunTemplate != "" && cfg.RunCard == "" {
			return nil, errors.New("a run card template needs a process directory or an explicit run card path")
		}
	}

	if cfg.ParamCard != "" && cfg.ParamTemplate == "" {
		return nil, fmt.Errorf("param card %s requested without a template", cfg.ParamCard)
	}
	if cfg.RunCard != "" && cfg.RunTemplate == "" {
		return nil, fmt.Errorf("run card %s requested without a template", cfg.RunCard)
	}

	return &cfg, nil
}
