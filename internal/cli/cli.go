package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/calcgrid/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("calcgrid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
calcgrid - Frequency-checked time series calculation graphs.

Usage:
  calcgrid [options] [PIPELINE_PATH] [DATA_PATH]

Arguments:
  PIPELINE_PATH
    Path to a single .hcl file or a directory containing .hcl files.
  DATA_PATH
    Path to a YAML dataset with the input series.

Options:
`)
		flagSet.PrintDefaults()
	}

	pipelineFlag := flagSet.String("pipeline", "", "Path to the pipeline file or directory.")
	pFlag := flagSet.String("p", "", "Path to the pipeline file or directory (shorthand).")
	dataFlag := flagSet.String("data", "", "Path to the YAML dataset.")
	dFlag := flagSet.String("d", "", "Path to the YAML dataset (shorthand).")
	dotFlag := flagSet.String("dot", "", "Write the graph as Graphviz DOT to this path. '-' writes to stdout.")
	outputFlag := flagSet.String("output", app.OutputText, "Result format. Options: 'text' or 'yaml'.")
	maxIterFlag := flagSet.Int("max-iterations", 0, "Override the pipeline's iteration bound. 0 keeps it.")
	checkFlag := flagSet.Bool("check", false, "Only check frequencies, do not compute.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	positional := flagSet.Args()
	pipelinePath := firstNonEmpty(*pipelineFlag, *pFlag)
	if pipelinePath == "" && len(positional) > 0 {
		pipelinePath, positional = positional[0], positional[1:]
	}
	dataPath := firstNonEmpty(*dataFlag, *dFlag)
	if dataPath == "" && len(positional) > 0 {
		dataPath, positional = positional[0], positional[1:]
	}
	if len(positional) > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(positional, " "))}
	}
	slog.Debug("Paths determined.", "pipeline", pipelinePath, "data", dataPath)

	if pipelinePath == "" {
		slog.Debug("No pipeline path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	if dataPath == "" {
		return nil, false, &ExitError{Code: 2, Message: "a dataset path is required"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		PipelinePath:  pipelinePath,
		DataPath:      dataPath,
		DotPath:       *dotFlag,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
		OutputFormat:  strings.ToLower(*outputFlag),
		MaxIterations: *maxIterFlag,
		CheckOnly:     *checkFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
