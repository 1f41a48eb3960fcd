package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/oasisprotocol/oasis-core/go/common/logging"
	"github.com/spf13/cobra"

	"github.com/oasisprotocol/txpool-parser/conf"
	"github.com/oasisprotocol/txpool-parser/convert"
	"github.com/oasisprotocol/txpool-parser/log"
	"github.com/oasisprotocol/txpool-parser/telemetry"
	"github.com/oasisprotocol/txpool-parser/version"
)

var (
	// Path to the yaml configuration file, empty for defaults.
	configFile string

	rootCmd = &cobra.Command{
		Use:   "txpool-parser",
		Short: "Convert debug-printed txpool dumps to canonical JSON",
		Long: "txpool-parser reads a debug-printed txpool_content or txpool_inspect dump\n" +
			"from standard input and writes its canonical JSON rendering to a file in\n" +
			"the output directory.",
		Run: runRoot,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Software version: %s\n", version.Software)
			fmt.Printf("Go toolchain version: %s\n", version.Toolchain)
			fmt.Printf("go-ethereum version: %s\n", version.GetGoEthereumVersion())
		},
	}
)

// The global logger.
var logger = logging.GetLogger("txpool-parser")

func init() {
	rootCmd.Flags().StringVar(&configFile, "config", "", "path to the yaml config file")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	_ = rootCmd.Execute()
}

func runRoot(cmd *cobra.Command, args []string) {
	// Initialize config.
	cfg, err := conf.InitConfig(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: failed to initialize config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logging.
	if err = log.InitLogging(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: unable to initialize logging: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting txpool parser", "version", version.Software)

	start := time.Now()

	// The entire dump is read before any processing begins.
	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		logger.Error("failed to read standard input", "err", err)
		fail(cfg, err)
	}

	reporter := telemetry.Reporter{}

	v, err := convert.Translate(string(raw), reporter)
	if err != nil {
		var synErr *convert.SyntaxError
		if errors.As(err, &synErr) {
			// Keep the rewritten text around for offline diagnosis.
			debugFile := filepath.Join(cfg.OutputDir, fmt.Sprintf("debug_clean_%d.txt", time.Now().Unix()))
			if werr := os.WriteFile(debugFile, []byte(synErr.Cleaned), 0o600); werr != nil {
				logger.Error("failed to write diagnostic file", "err", werr)
			} else {
				fmt.Fprintf(os.Stderr, "Cleaned output saved to %s for debugging\n", debugFile)
			}
			logger.Error("JSON parse error", "err", err, "line", synErr.Line, "column", synErr.Column)
		} else {
			logger.Error("failed to translate dump", "err", err)
		}
		fail(cfg, err)
	}

	out, err := convert.EncodePretty(v, reporter)
	if err != nil {
		logger.Error("failed to encode output", "err", err)
		fail(cfg, err)
	}

	filename := filepath.Join(cfg.OutputDir, fmt.Sprintf("txpool_%d.json", time.Now().Unix()))
	if err = os.WriteFile(filename, out, 0o600); err != nil {
		logger.Error("failed to write output file", "err", err, "filename", filename)
		fail(cfg, err)
	}

	logger.Info("converted output saved", "filename", filename, "duration", time.Since(start))
	telemetry.Push(cfg.Telemetry)

	fmt.Printf("Converted output saved to %s\n", filename)
}

// fail pushes any collected telemetry, reports the error and exits non-zero.
func fail(cfg *conf.Config, err error) {
	telemetry.Push(cfg.Telemetry)
	fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	os.Exit(1)
}
