package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/smy-101/skillcheck/internal/linkcheck"
	"github.com/smy-101/skillcheck/internal/logger"
	"github.com/smy-101/skillcheck/internal/report"
	"github.com/smy-101/skillcheck/internal/scanner"
	"github.com/smy-101/skillcheck/internal/validate"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// errValidationFailed signals a non-zero exit after diagnostics were printed.
var errValidationFailed = errors.New("validation failed")

// validateOptions carries the resolved settings for one validation run.
type validateOptions struct {
	Strict      bool
	GitHub      bool
	Summary     bool
	Verbose     bool
	Workers     int
	CheckLinks  bool
	LinkTimeout time.Duration
}

var rootCmd = &cobra.Command{
	Use:   "skillcheck <path>",
	Short: "Validate skill directories against the Agent Skills layout",
	Long: `Validate a skills repository or a single skill directory.

A directory containing SKILL.md is validated as one skill. Otherwise every
<domain>/<skill>/SKILL.md beneath the path is discovered and validated.

Examples:
  skillcheck skills/
  skillcheck skills/performance/analyzing-slow-queries/
  skillcheck skills/ --strict --github`,
	Args:              cobra.ExactArgs(1),
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	SilenceUsage:      true,
	SilenceErrors:     true,
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := executeValidate(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], optionsFromConfig())
		if err != nil {
			return err
		}
		if code != 0 {
			return errValidationFailed
		}
		return nil
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.Bool("strict", false, "Treat warnings as errors (fail if any warnings)")
	flags.Bool("github", false, "Output in GitHub Actions annotation format")
	flags.Bool("summary", false, "Print a per-skill summary table")
	flags.BoolP("verbose", "v", false, "Enable debug logging on stderr")
	flags.Int("workers", 4, "Number of skills validated concurrently")
	flags.Bool("check-links", false, "Probe external http(s) links found in SKILL.md")
	flags.Duration("link-timeout", linkcheck.DefaultTimeout, "Timeout for each external link probe")

	if err := bindFlags(flags); err != nil {
		panic(err)
	}
}

// bindFlags binds every flag to the viper key of the same name, with dashes
// replaced by underscores.
func bindFlags(flags *pflag.FlagSet) error {
	var bindErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if bindErr != nil {
			return
		}
		key := strings.ReplaceAll(f.Name, "-", "_")
		bindErr = viper.BindPFlag(key, f)
	})
	return bindErr
}

func optionsFromConfig() validateOptions {
	return validateOptions{
		Strict:      viper.GetBool("strict"),
		GitHub:      viper.GetBool("github"),
		Summary:     viper.GetBool("summary"),
		Verbose:     viper.GetBool("verbose"),
		Workers:     viper.GetInt("workers"),
		CheckLinks:  viper.GetBool("check_links"),
		LinkTimeout: viper.GetDuration("link_timeout"),
	}
}

// executeValidate validates path, prints the diagnostics to out and returns
// the process exit code.
func executeValidate(ctx context.Context, out, errOut io.Writer, path string, opts validateOptions) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	log := logger.New(errOut, opts.Verbose)

	var validatorOpts []validate.Option
	if opts.CheckLinks {
		validatorOpts = append(validatorOpts, validate.WithLinkChecker(linkcheck.NewClient(opts.LinkTimeout, -1)))
	}

	s := scanner.New(path,
		scanner.WithWorkers(opts.Workers),
		scanner.WithLogger(log),
		scanner.WithValidatorOptions(validatorOpts...),
	)
	rep := s.Validate(ctx)

	format := report.FormatTerminal
	if opts.GitHub {
		format = report.FormatGitHub
	}
	printer := report.NewPrinter(out, format)
	printer.Print(rep.ValidationResult)

	if opts.Summary {
		if err := printer.PrintSummary(rep.Skills); err != nil {
			return 1, err
		}
	}

	return rep.ExitCode(opts.Strict), nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errValidationFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
