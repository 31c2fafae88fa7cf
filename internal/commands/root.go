// Package commands provides CLI commands for folderchat.
package commands

import (
	"fmt"
	"os"

	charm "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/diogo/folderchat/internal/config"
	"github.com/diogo/folderchat/internal/logging"
)

var (
	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// cli carries the state shared by one command tree
type cli struct {
	deps    *Dependencies
	verbose bool
	cfg     config.Config
	log     *charm.Logger
}

// NewRootCmd builds the folderchat command tree. A nil deps uses the defaults.
func NewRootCmd(deps *Dependencies) *cobra.Command {
	if deps == nil {
		deps = NewDependencies()
	}
	c := &cli{
		deps: deps,
		cfg:  config.DefaultConfig(),
		log:  logging.Default(),
	}

	cmd := &cobra.Command{
		Use:   "folderchat",
		Short: "Format folder chat messages for the terminal, HTML and Markdown",
		Long: `folderchat turns the lightweight markdown used in folder chat messages
(headers, lists, **bold**, *italic* and ` + "`code`" + `) into terminal output,
escaped HTML fragments, canonical Markdown or a JSON block tree.

Examples:
  folderchat format "## Plan\n1. read\n2. **write**"
  folderchat format -f reply.md --to html --role assistant --wrap
  cat reply.md | folderchat format --to markdown
  folderchat history export.json --to html -o chat.html
  folderchat results results.json --to markdown
  folderchat view export.json
  folderchat config set output_format html`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c.setup()
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if v, _ := cmd.Flags().GetBool("version"); v {
				_, err := fmt.Fprintf(c.deps.Stdout, "folderchat %s (built %s)\n", Version, BuildTime)
				return err
			}
			return cmd.Help()
		},
	}

	cmd.SetIn(deps.Stdin)
	cmd.SetOut(deps.Stdout)
	cmd.SetErr(deps.Stderr)

	cmd.PersistentFlags().BoolVar(&c.verbose, "verbose", false, "Log debug details to stderr")
	cmd.Flags().BoolP("version", "v", false, "Show version and exit")

	cmd.AddCommand(c.newFormatCmd())
	cmd.AddCommand(c.newHistoryCmd())
	cmd.AddCommand(c.newResultsCmd())
	cmd.AddCommand(c.newViewCmd())
	cmd.AddCommand(c.newConfigCmd())

	return cmd
}

// setup loads the user configuration and installs the logger. An unreadable
// config falls back to defaults with a warning.
func (c *cli) setup() {
	c.log = logging.New(c.deps.Stderr, c.verbose)

	cfg, err := loadConfig(c.deps)
	if err != nil {
		c.log.Warn("using default configuration", "err", err)
	}
	c.cfg = cfg

	logging.SetVerbosity(c.log, c.verbose || cfg.Verbose)
	logging.SetDefault(c.log)
}

func loadConfig(deps *Dependencies) (config.Config, error) {
	path, err := deps.ConfigPath()
	if err != nil {
		return config.DefaultConfig(), err
	}
	return config.LoadConfigFrom(path)
}

// rootCmd represents the base command
var rootCmd = NewRootCmd(nil)

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Error"))
		os.Exit(1)
	}
}
