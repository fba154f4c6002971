package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/context-maximiser/sampleproc/pkg/models"
	"github.com/context-maximiser/sampleproc/pkg/report"
	"github.com/context-maximiser/sampleproc/pkg/scenario"
	"github.com/context-maximiser/sampleproc/pkg/transform"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app holds the state shared by all subcommands of one invocation
type app struct {
	v       *viper.Viper
	cfgFile string
	logger  *zap.Logger
}

// newRootCmd builds the command tree. Running the root command without a
// subcommand runs the reference scenario.
func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "sampleproc",
		Short: "Run the sample uppercase filter and sum aggregator",
		Long: `sampleproc uppercases a list of items, skipping null entries, and sums a list
of prices. The built-in scenario deliberately includes a price written as text
("30"); the sum policy decides whether that fails the run or is parsed.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runScenario(cmd, scenario.Default())
		},
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.sampleproc.yaml)")
	flags.BoolP("verbose", "v", false, "verbose output")
	flags.String("policy", string(transform.DefaultPolicy), "sum policy for non-numeric prices (fail-fast, coerce)")
	flags.StringP("output", "o", string(report.FormatText), "output format ("+strings.Join(report.Formats(), ", ")+")")

	// Bind flags to viper
	a.v.BindPFlag("verbose", flags.Lookup("verbose"))
	a.v.BindPFlag("sum.policy", flags.Lookup("policy"))
	a.v.BindPFlag("output.format", flags.Lookup("output"))

	rootCmd.AddCommand(a.runCmd())
	rootCmd.AddCommand(a.filterCmd())
	rootCmd.AddCommand(a.sumCmd())

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	if err := a.initConfig(); err != nil {
		return err
	}

	a.logger = newLogger(cmd, a.v.GetBool("verbose"))

	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("Using config file", zap.String("path", used))
	}
	return nil
}

func (a *app) initConfig() error {
	if a.cfgFile != "" {
		// Use config file from the flag
		a.v.SetConfigFile(a.cfgFile)
	} else {
		// Search config in home directory with name ".sampleproc" (without extension)
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(".sampleproc")
	}

	a.v.SetEnvPrefix("SAMPLEPROC")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// newLogger writes JSON logs to the command's error stream so stdout only
// carries results.
func newLogger(cmd *cobra.Command, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(cmd.ErrOrStderr()),
		zap.NewAtomicLevelAt(level),
	)
	return zap.New(core)
}

func (a *app) policy() (transform.Policy, error) {
	return transform.ParsePolicy(a.v.GetString("sum.policy"))
}

func (a *app) writer(cmd *cobra.Command, base report.Result) (report.Writer, error) {
	return report.NewWriter(a.v.GetString("output.format"), cmd.OutOrStdout(), base)
}

// runScenario filters the items and sums the prices. The Processed result is
// emitted before summing starts.
func (a *app) runScenario(cmd *cobra.Command, sc *scenario.Scenario) error {
	policy, err := a.policy()
	if err != nil {
		return err
	}
	out, err := a.writer(cmd, report.Result{Scenario: sc.Name, Policy: string(policy)})
	if err != nil {
		return err
	}

	aggregator := transform.NewAggregator(policy)
	a.logger.Debug("Running scenario",
		zap.String("scenario", sc.Name),
		zap.String("policy", string(aggregator.Policy())),
		zap.Int("items", len(sc.Items)),
		zap.Int("prices", len(sc.Prices)))

	processed, err := transform.UppercaseFilter(sc.Items)
	if err != nil {
		return a.fail(out, err, "failed to process items")
	}
	a.logger.Debug("Items processed", zap.Int("kept", len(processed)))
	if err := out.Processed(processed); err != nil {
		return fmt.Errorf("failed to write processed items: %w", err)
	}

	total, err := aggregator.Sum(sc.Prices)
	if err != nil {
		return a.fail(out, err, "failed to sum prices")
	}
	if err := out.Total(total); err != nil {
		return fmt.Errorf("failed to write total: %w", err)
	}

	return out.Flush()
}

// fail records err in the output, flushes what was produced and returns err
// wrapped with msg. cobra prints the returned error once on stderr.
func (a *app) fail(out report.Writer, err error, msg string) error {
	a.logger.Debug("Run failed", zap.Error(err))
	outErr := errors.Join(out.Fail(err), out.Flush())
	if msg != "" {
		err = fmt.Errorf("%s: %w", msg, err)
	}
	if outErr != nil {
		return errors.Join(err, outErr)
	}
	return err
}

// runCmd runs the reference scenario or one loaded from a file
func (a *app) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [scenario-file]",
		Short: "Run a scenario",
		Long:  "Run the reference scenario, or a scenario loaded from a .yaml, .yml or .json file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := scenario.Default()
			if len(args) > 0 {
				loaded, err := scenario.Load(args[0])
				if err != nil {
					return err
				}
				a.logger.Debug("Loaded scenario", zap.String("path", args[0]))
				sc = loaded
			}
			return a.runScenario(cmd, sc)
		},
	}
}

// filterCmd runs only the uppercase filter
func (a *app) filterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "filter [values...]",
		Short: "Uppercase values, skipping null",
		Long:  `Uppercase every value except null. Numbers are rejected; quote them ("42") to treat them as text.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.writer(cmd, report.Result{})
			if err != nil {
				return err
			}

			processed, err := transform.UppercaseFilter(models.ParseLiterals(args))
			if err != nil {
				return a.fail(out, err, "")
			}
			if err := out.Processed(processed); err != nil {
				return err
			}
			return out.Flush()
		},
	}
}

// sumCmd runs only the sum aggregator
func (a *app) sumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sum [values...]",
		Short: "Sum values under the configured policy",
		Long:  `Sum numeric values. Quoted values ("30") are text and are only accepted with --policy coerce.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, err := a.policy()
			if err != nil {
				return err
			}
			out, err := a.writer(cmd, report.Result{Policy: string(policy)})
			if err != nil {
				return err
			}

			total, err := transform.NewAggregator(policy).Sum(models.ParseLiterals(args))
			if err != nil {
				return a.fail(out, err, "")
			}
			if err := out.Total(total); err != nil {
				return err
			}
			return out.Flush()
		},
	}
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
