package rehastim

import "github.com/lokomat-fes/lokictl/pkg/types"

// NopPort discards every command. It backs offline previews and dry runs
// where no hardware is attached.
type NopPort struct{}

func (NopPort) InitStimulation(Program) error          { return nil }
func (NopPort) StartStimulation([]types.Channel) error { return nil }
func (NopPort) PauseStimulation() error                { return nil }
func (NopPort) EndStimulation() error                  { return nil }
func (NopPort) Close() error                           { return nil }
