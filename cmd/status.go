package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lokomat-fes/lokictl/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active device profile",
	Long: `Display the active device profile: the stimulator it drives, its serial
port and the channel layout.

Examples:
  lokictl status`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	p, name, err := activeProfile()
	if err != nil {
		return fmt.Errorf("failed to resolve profile: %w", err)
	}

	fmt.Println("Current Status")
	fmt.Println(ui.MutedStyle.Render("─────────────────────────────────"))
	fmt.Println()

	if p == nil {
		fmt.Println("Profile:  " + ui.MutedStyle.Render("(not set)"))
		fmt.Println()
		fmt.Println("No device profile configured. Add one with:")
		fmt.Println("  lokictl profile add lab --port /dev/ttyUSB0")
		fmt.Println("  lokictl profile use lab")
		return nil
	}

	fmt.Printf("Profile:  %s\n", ui.HeaderStyle.Render(name))
	fmt.Printf("Device:   %s\n", ui.ChannelStyle.Render(p.Device.Type))
	if p.Device.Port != "" {
		fmt.Printf("Port:     %s\n", p.Device.Port)
	}
	if p.Device.StimulationInterval > 0 {
		fmt.Printf("Interval: %d ms\n", p.Device.StimulationInterval)
	}
	if p.Device.LowFrequencyFactor > 0 {
		fmt.Printf("LF factor: %d\n", p.Device.LowFrequencyFactor)
	}

	fmt.Println()
	if len(p.Channels) == 0 {
		fmt.Println("Channels: " + ui.MutedStyle.Render("(none configured)"))
		return nil
	}

	fmt.Println("Channels:")
	for _, ch := range p.Channels {
		window := ""
		if ch.To != ch.From {
			window = fmt.Sprintf("  stride %.0f%%-%.0f%% (%s)", ch.From*100, ch.To*100, ch.Side)
		}
		fmt.Printf("  %s %s%s\n",
			ui.ChannelStyle.Render(fmt.Sprintf("ch%d", ch.Index)),
			ui.DurationStyle.Render(fmt.Sprintf("%.0f mA", ch.Amplitude)),
			ui.MutedStyle.Render(window))
	}

	return nil
}
