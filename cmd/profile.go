package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/lokomat-fes/lokictl/internal/config"
	"github.com/lokomat-fes/lokictl/internal/ui"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage device profiles",
	Long: `List and manage device profiles. A profile names one rig setup: the
stimulator, its serial port and the channel layout.

The current active profile is marked with an asterisk (*).

Examples:
  lokictl profile
  lokictl profile use lab
  lokictl profile add lab --port /dev/ttyUSB0 --interval 30
  lokictl profile delete lab`,
	RunE: runProfileList,
}

var profileUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Set the active profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileUse,
}

var profileAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new profile",
	Long: `Add a new device profile.

Examples:
  lokictl profile add lab --port /dev/ttyUSB0 --interval 30 --lf-factor 2
  lokictl profile add clinic --type rehastim2 --port COM3`,
	Args: cobra.ExactArgs(1),
	RunE: runProfileAdd,
}

var profileDeleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Short:   "Delete a profile",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"rm", "remove"},
	RunE:    runProfileDelete,
}

var (
	// Flags for profile add
	addDeviceType string
	addPort       string
	addInterval   int
	addLFFactor   int
)

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileUseCmd)
	profileCmd.AddCommand(profileAddCmd)
	profileCmd.AddCommand(profileDeleteCmd)

	// Flags for profile add
	profileAddCmd.Flags().StringVar(&addDeviceType, "type", "rehastim2", "stimulator family")
	profileAddCmd.Flags().StringVar(&addPort, "port", "", "serial port of the device")
	profileAddCmd.Flags().IntVar(&addInterval, "interval", 30, "stimulation interval in ms")
	profileAddCmd.Flags().IntVar(&addLFFactor, "lf-factor", 0, "low frequency factor")
}

func runProfileList(cmd *cobra.Command, args []string) error {
	profiles, current, err := config.ListProfiles()
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}

	if len(profiles) == 0 {
		fmt.Println("No profiles configured.")
		fmt.Println()
		fmt.Println("Add one with:")
		fmt.Println("  lokictl profile add lab --port /dev/ttyUSB0")
		return nil
	}

	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println()
	fmt.Printf("  %-20s  %-12s  %-16s  %s\n",
		ui.HeaderStyle.Render("PROFILE"),
		ui.HeaderStyle.Render("DEVICE"),
		ui.HeaderStyle.Render("PORT"),
		ui.HeaderStyle.Render("CHANNELS"))

	for _, name := range names {
		p := profiles[name]
		marker := " "
		if name == current {
			marker = "*"
		}
		fmt.Printf("%s %-20s  %-12s  %-16s  %d\n",
			ui.ChannelStyle.Render(marker),
			name,
			p.Device.Type,
			p.Device.Port,
			len(p.Channels))
	}
	fmt.Println()

	return nil
}

func runProfileUse(cmd *cobra.Command, args []string) error {
	name := args[0]

	if err := config.SetCurrentProfile(name); err != nil {
		return fmt.Errorf("failed to switch profile: %w", err)
	}

	fmt.Printf("Switched to profile %s\n", ui.HeaderStyle.Render(name))
	return nil
}

func runProfileAdd(cmd *cobra.Command, args []string) error {
	name := args[0]

	p := &config.Profile{
		Device: config.DeviceConfig{
			Type:                addDeviceType,
			Port:                addPort,
			StimulationInterval: addInterval,
			LowFrequencyFactor:  addLFFactor,
		},
	}
	if err := config.AddProfile(name, p); err != nil {
		return fmt.Errorf("failed to add profile: %w", err)
	}

	fmt.Printf("Added profile %s\n", ui.HeaderStyle.Render(name))
	return nil
}

func runProfileDelete(cmd *cobra.Command, args []string) error {
	name := args[0]

	if err := config.DeleteProfile(name); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	fmt.Printf("Deleted profile %s\n", name)
	return nil
}
