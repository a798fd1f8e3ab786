package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lokomat-fes/lokictl/internal/logging"
	"github.com/lokomat-fes/lokictl/internal/planner"
	"github.com/lokomat-fes/lokictl/internal/rehastim"
	"github.com/lokomat-fes/lokictl/internal/ui"
	"github.com/lokomat-fes/lokictl/pkg/types"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Preview the stimulation windows of a session",
	Long: `Run the active profile's stride-based stimulation plan against a
synthetic gait cycle and show when each stimulation would start and stop.
Nothing is sent to the device.

Examples:
  lokictl plan
  lokictl plan --strides 8 --cadence 1.5s`,
	RunE: runPlan,
}

var (
	planStrides int
	planCadence time.Duration
	planStep    time.Duration
)

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().IntVar(&planStrides, "strides", 4, "number of strides to simulate")
	planCmd.Flags().DurationVar(&planCadence, "cadence", 1200*time.Millisecond, "stride period")
	planCmd.Flags().DurationVar(&planStep, "step", 10*time.Millisecond, "simulation tick")
}

func runPlan(cmd *cobra.Command, args []string) error {
	p, name, err := activeProfile()
	if err != nil {
		return fmt.Errorf("failed to resolve profile: %w", err)
	}
	if p == nil {
		fmt.Println("No device profile configured. Add one with:")
		fmt.Println("  lokictl profile add lab --port /dev/ttyUSB0")
		return nil
	}
	if len(p.Channels) == 0 {
		return fmt.Errorf("profile %q has no channels configured", name)
	}
	if planStrides <= 0 || planCadence <= 0 || planStep <= 0 {
		return fmt.Errorf("strides, cadence and step must all be positive")
	}

	windows := make([]planner.Window, 0, len(p.Channels))
	channels := make([]types.Channel, 0, len(p.Channels))
	for _, ch := range p.Channels {
		side, ok := types.ParseSide(ch.Side)
		if !ok && ch.Side != "" {
			return fmt.Errorf("channel %d: unknown side %q", ch.Index, ch.Side)
		}
		windows = append(windows, planner.Window{Side: side, From: ch.From, To: ch.To})
		channels = append(channels, types.Channel{Index: ch.Index, Amplitude: ch.Amplitude})
	}

	// The whole preview runs on a simulated clock so the recorded session
	// carries stride-accurate times instead of wall-clock ones.
	start := time.Now()
	now := start
	data := rehastim.NewData(
		rehastim.WithClock(func() time.Time { return now }),
		rehastim.WithDataBus(logging.Default),
	)

	dev := rehastim.NewRehastim2(
		rehastim.NopPort{},
		p.Device.StimulationInterval,
		p.Device.LowFrequencyFactor,
		rehastim.WithRecorder(data),
		rehastim.WithBus(logging.Default),
	)
	dev.SetChannels(channels)

	stim := planner.NewStrideBased(planner.WindowCondition(windows))
	gait := planner.FixedCadence{Period: planCadence}

	// The Rehastim2 starts and stops all programmed channels together, so
	// the device runs whenever at least one channel wants to stimulate.
	active := 0
	running := false
	total := time.Duration(planStrides) * planCadence
	for t := time.Duration(0); t <= total; t += planStep {
		now = start.Add(t)
		for _, c := range stim.Tick(t, gait) {
			switch c.Kind {
			case planner.Start:
				active++
			case planner.Stop:
				active--
			}
		}

		switch {
		case active > 0 && !running:
			if err := dev.Start(0); err != nil {
				return err
			}
			running = true
		case active == 0 && running:
			if err := dev.Stop(); err != nil {
				return err
			}
			running = false
		}
	}
	if running {
		if err := dev.Stop(); err != nil {
			return err
		}
	}
	if err := dev.Close(); err != nil {
		return err
	}

	fmt.Printf("Stimulation plan for profile %s (%d strides @ %s)\n\n",
		ui.HeaderStyle.Render(name), planStrides, planCadence)
	ui.PrintSessionTable(data)

	return nil
}
