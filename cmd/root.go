package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	clog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lokomat-fes/lokictl/internal/config"
	"github.com/lokomat-fes/lokictl/internal/logging"
	"github.com/lokomat-fes/lokictl/internal/shell"
)

var (
	// Global flags
	profileName string
	verbose     bool
)

// logger is the operator-facing logger used by non-interactive commands.
// The console attaches its own sink instead.
var logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
})

var rootCmd = &cobra.Command{
	Use:   "lokictl",
	Short: "Lokomat FES Server Interface - console client for the stimulation rig",
	Long: `lokictl is the console client of the Lokomat FES rig. Run it without
arguments to open the interactive console on the debug screen, which shows
every log record the client emits.

Console:
  lokictl                    # Open the console on the debug screen

Rig setup:
  lokictl status             # Show the active device profile
  lokictl profile            # List configured device profiles
  lokictl profile use lab    # Switch to the "lab" profile

Planning:
  lokictl plan               # Preview the stimulation windows of a session`,
	RunE: runConsole,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initRuntime)

	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&profileName, "profile", "p", "", "device profile to use")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show debug records")

	// Bind flags to viper
	_ = viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initRuntime() {
	// Read from environment variables
	viper.SetEnvPrefix("LOKICTL")
	viper.AutomaticEnv()

	// Priority for profile: --profile flag > LOKICTL_PROFILE env > config file
	if profileName == "" {
		profileName = viper.GetString("profile")
	}
	if profileName == "" {
		if cfg, err := config.Load(); err == nil {
			profileName = cfg.CurrentProfile
		}
	}

	if verbose || viper.GetBool("verbose") {
		logger.SetLevel(clog.DebugLevel)
	}

	// Non-interactive commands report through the stderr logger; the
	// console swaps in its own sink when it starts.
	logging.Default.Attach(logging.NewCharmSink(logger))
}

func runConsole(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger.Debug("opening console", "profile", profileName)

	app := shell.New(shell.WithSeed(lipgloss.Color(cfg.SeedColor())))
	return app.Run()
}

// activeProfile resolves the device profile the command should act on:
// --profile flag first, then the config file's current profile.
func activeProfile() (*config.Profile, string, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, "", err
	}

	name := profileName
	if name == "" {
		name = cfg.CurrentProfile
	}
	if name == "" {
		return nil, "", nil
	}

	p, ok := cfg.Profiles[name]
	if !ok {
		return nil, "", fmt.Errorf("profile %q not found", name)
	}
	return p, name, nil
}
