package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/specialistvlad/mgcards/internal/app"
)

// Environment variables consulted for flags that were not given explicitly.
const (
	EnvLogLevel   = "MGCARDS_LOG_LEVEL"
	EnvLogFormat  = "MGCARDS_LOG_FORMAT"
	EnvProcessDir = "MGCARDS_PROCESS_DIR"
)

const defaultEnvFile = ".env"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("mgcards", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
mgcards - Generates MadGraph parameter, reweight and run cards from an analysis setup.

Usage:
  mgcards [options] [SETUP_PATH]

Arguments:
  SETUP_PATH
    Path to a .hcl/.yaml setup file or a directory containing them.

Environment:
  MGCARDS_LOG_LEVEL, MGCARDS_LOG_FORMAT, MGCARDS_PROCESS_DIR
    Defaults for the matching flags. They may also be set in the env file.

Options:
`)
		flagSet.PrintDefaults()
	}

	setupFlag := flagSet.String("setup", "", "Path to the setup file or directory.")
	sFlag := flagSet.String("s", "", "Path to the setup file or directory (shorthand).")
	processDirFlag := flagSet.String("process-dir", "", "MadGraph process directory; cards are written to its Cards/ folder.")
	paramTemplateFlag := flagSet.String("param-template", "", "Parameter card template. The param card is skipped when empty.")
	paramCardFlag := flagSet.String("param-card", "", "Output path of the param card. Defaults to <process-dir>/Cards/param_card.dat.")
	runTemplateFlag := flagSet.String("run-template", "", "Run card template. The run card is skipped when empty.")
	runCardFlag := flagSet.String("run-card", "", "Output path of the run card. Defaults to <process-dir>/Cards/run_card.dat.")
	reweightCardFlag := flagSet.String("reweight-card", "", "Output path of the reweight card. Defaults to <process-dir>/Cards/reweight_card.dat.")
	sampleFlag := flagSet.String("sample-benchmark", "", "Benchmark the events are sampled at. Defaults to the first benchmark.")
	orderFlag := flagSet.String("order", "LO", "Perturbative order of the process. Options: 'LO' or 'NLO'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	envFileFlag := flagSet.String("env-file", defaultEnvFile, "Dotenv file with MGCARDS_* defaults. A missing default file is ignored.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	explicit := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	env, err := readEnv(*envFileFlag, explicit["env-file"])
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	fromEnv := func(flagName, envName string, current string) string {
		if explicit[flagName] {
			return current
		}
		if v := env(envName); v != "" {
			slog.Debug("Flag default taken from environment.", "flag", flagName, "env", envName)
			return v
		}
		return current
	}

	path := ""
	if *setupFlag != "" {
		path = *setupFlag
	} else if *sFlag != "" {
		path = *sFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Setup path determined.", "path", path)

	if path == "" {
		slog.Debug("No setup path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(fromEnv("log-format", EnvLogFormat, *logFormatFlag))
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(fromEnv("log-level", EnvLogLevel, *logLevelFlag))
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		SetupPath:       path,
		ProcessDir:      fromEnv("process-dir", EnvProcessDir, *processDirFlag),
		ParamTemplate:   *paramTemplateFlag,
		ParamCard:       *paramCardFlag,
		RunTemplate:     *runTemplateFlag,
		RunCard:         *runCardFlag,
		ReweightCard:    *reweightCardFlag,
		SampleBenchmark: *sampleFlag,
		Order:           *orderFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// readEnv returns a lookup that prefers the process environment over the
// dotenv file. A missing file is only an error when it was asked for
// explicitly.
func readEnv(path string, required bool) (func(string) string, error) {
	values := map[string]string{}
	if path != "" {
		read, err := godotenv.Read(path)
		switch {
		case err == nil:
			values = read
		case errors.Is(err, fs.ErrNotExist) && !required:
			slog.Debug("No env file found, continuing without it.", "path", path)
		default:
			return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
		}
	}

	return func(name string) string {
		if v, ok := os.LookupEnv(name); ok {
			return v
		}
		return values[name]
	}, nil
}
