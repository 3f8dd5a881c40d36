// Colorlog demonstrates the logger package from the command line and lets
// shell scripts print colored prompts.
package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/mordilloSan/go-colorlog/logger"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitError   = 2 // bad flag, argument count, level, color or second count
)

// Command-line flags
var (
	configFile string
	level      string
	maxLineLen int
	typeHints  bool
	colorMode  string
	verbose    bool
	clock      bool

	// plain is set when colors are disabled for this run.
	plain bool
)

var rootCmd = &cobra.Command{
	Use:   "colorlog",
	Short: "Colored console prompts for humans",
	Long: `Colorlog prints messages behind colored level prompts and
pretty-prints structured payloads below them.

Run without a subcommand to see every level in action.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
	RunE:              runDemo,
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Show every level, layout and color",
	Args:  usageArgs(cobra.NoArgs),
	RunE:  runDemo,
}

var sayCmd = &cobra.Command{
	Use:   "say LEVEL MESSAGE [PAYLOAD]",
	Short: "Print one message at the given level",
	Long: `Say prints MESSAGE behind the prompt of LEVEL. PAYLOAD is parsed as
YAML, so '{a: 1, b: [2, 3]}' is printed as a mapping.

LEVEL is one of debug, info, warning, success, error, or log:<color>
for a custom colored prompt.`,
	Example: `  colorlog say success "model saved" ./out/model.bin
  colorlog say info "metrics" '{loss: 0.12, acc: 0.97}'
  colorlog say log:green "custom color"`,
	Args: usageArgs(cobra.RangeArgs(2, 3)),
	RunE: runSay,
}

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "Print every color plain, bold and highlighted",
	Args:  usageArgs(cobra.NoArgs),
	Run: func(cmd *cobra.Command, args []string) {
		for _, c := range logger.AllColors() {
			fmt.Println(
				logger.Colorize(c.String(), c, false, false),
				logger.Colorize(c.String()+".BOLD", c, true, false),
				logger.Colorize(c.String()+".HIGHLIGHT", c, false, true),
			)
		}
	},
}

var durationCmd = &cobra.Command{
	Use:     "duration SECONDS...",
	Short:   "Format second counts as human durations",
	Example: "  colorlog duration 45 125 3661 --verbose",
	Args:    usageArgs(cobra.MinimumNArgs(1)),
	RunE:    runDuration,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "YAML config file (level, type_hinting, max_line_len, no_color)")
	flags.StringVarP(&level, "level", "l", "", "Minimum level: "+strings.ToLower(strings.Join(logger.LevelNames(), ", ")))
	flags.IntVar(&maxLineLen, "max-line-len", 0, "Payloads shorter than this print inline (default 70)")
	flags.BoolVar(&typeHints, "type-hints", true, "Print the Go type of every payload")
	flags.StringVar(&colorMode, "color", "auto", "Color output: auto, always or never")

	durationCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Spell out units")
	durationCmd.Flags().BoolVar(&clock, "clock", false, "Clock style (1d1:01:01s)")

	rootCmd.AddCommand(demoCmd, sayCmd, colorsCmd, durationCmd)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", logger.ErrInvalidArgument, err)
	})
}

// usageArgs marks argument count errors as invalid arguments.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", logger.ErrInvalidArgument, err)
		}
		return nil
	}
}

// setupLogger initializes the default logger from the config file and the
// flags that were set explicitly.
func setupLogger(cmd *cobra.Command, args []string) error {
	cfg := logger.DefaultConfig()
	if configFile != "" {
		loaded, err := logger.LoadConfig(configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("level") {
		if !logger.IsLevel(level) {
			return fmt.Errorf("--level must be one of %s, got %q: %w",
				strings.Join(logger.LevelNames(), ", "), level, logger.ErrInvalidArgument)
		}
		cfg.Level = level
	}
	if flags.Changed("max-line-len") {
		if maxLineLen <= 0 {
			return fmt.Errorf("--max-line-len must be positive, got %d: %w", maxLineLen, logger.ErrInvalidArgument)
		}
		cfg.MaxLineLen = maxLineLen
	}
	if flags.Changed("type-hints") {
		cfg.TypeHinting = typeHints
	}

	switch colorMode {
	case "always":
		cfg.NoColor = false
	case "never":
		cfg.NoColor = true
	case "auto":
		if !cfg.NoColor {
			cfg.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))
		}
	default:
		return fmt.Errorf("--color must be auto, always or never, got %q: %w", colorMode, logger.ErrInvalidArgument)
	}

	plain = cfg.NoColor
	logger.Init(cfg)
	return nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	for _, l := range logger.AllLevels() {
		demoAt(l)
	}

	logger.Info("inline payload", "short enough for one line")
	logger.Info("block payload", "this payload is long enough that it no longer fits next to the prompt")
	logger.Debug("mapping payload", map[string]any{
		"id":   42,
		"name": map[string]string{"first": "Jimmy", "last": "Deng"},
		"arr":  [][]int{{1, 2}, {3, 4}},
		"loss": math.NaN(),
		"lr":   3.0,
	})

	for _, c := range []string{"blue", "cyan", "green", "magenta"} {
		if err := logger.Log(c, nil, c); err != nil {
			return err
		}
	}
	logger.Print("printed without a message")
	logger.Success("finished in", logger.FormatDuration(125))
	return nil
}

func demoAt(l logger.Level) {
	msg := l.String() + "_msg"
	switch l {
	case logger.DebugLevel:
		logger.Debug(msg, nil)
	case logger.InfoLevel:
		logger.Info(msg, nil)
	case logger.WarningLevel:
		logger.Warning(msg, nil)
	case logger.SuccessLevel:
		logger.Success(msg, nil)
	case logger.ErrorLevel:
		logger.Error(msg, nil)
	}
}

func runSay(cmd *cobra.Command, args []string) error {
	name, msg := args[0], args[1]

	var payload any
	if len(args) == 3 {
		if err := yaml.Unmarshal([]byte(args[2]), &payload); err != nil {
			payload = args[2]
		}
	}

	if color, ok := strings.CutPrefix(name, "log:"); ok {
		return logger.Log(msg, payload, color)
	}

	l, err := logger.ParseLevel(name)
	if err != nil {
		return err
	}
	switch l {
	case logger.DebugLevel:
		logger.Debug(msg, payload)
	case logger.InfoLevel:
		logger.Info(msg, payload)
	case logger.WarningLevel:
		logger.Warning(msg, payload)
	case logger.SuccessLevel:
		logger.Success(msg, payload)
	case logger.ErrorLevel:
		logger.Error(msg, payload)
	}
	return nil
}

func runDuration(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		seconds, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid second count %q: %w", arg, logger.ErrInvalidArgument)
		}
		switch {
		case verbose:
			fmt.Println(logger.FormatDurationVerbose(seconds))
		case clock:
			fmt.Println(logger.FormatClock(seconds))
		case plain:
			fmt.Println(logger.FormatDuration(seconds))
		default:
			fmt.Println(logger.FormatDurationColor(seconds))
		}
	}
	return nil
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, logger.ErrInvalidArgument):
		return ExitError
	default:
		return ExitFailure
	}
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		logger.Error(err.Error(), nil)
	}
	os.Exit(exitCode(err))
}
