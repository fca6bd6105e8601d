package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/hupe1980/agentblend/core"
)

// runLayer executes one layer: it samples the agent slots from the validated
// pool and dispatches every slot concurrently. layer is 1-based. The first
// layer answers the user prompt directly; later layers route every slot
// through the aggregator model, feeding it the previous layer's outputs.
//
// All dispatched calls run to completion; a failing slot never cancels its
// siblings. Results keep dispatch order, not completion order. Slot failures
// are tolerated and reported; the layer fails only when no slot produced a
// response.
func (e *Engine) runLayer(ctx context.Context, layer int, prompt string, previous []string, pool []string, cfg core.Config, reporter *core.Reporter) ([]string, error) {
	agents := e.sampler.Sample(pool, cfg.AgentsPerLayer)

	results := make([]string, len(agents))
	failures := make([]error, len(agents))

	var wg sync.WaitGroup

	for i, model := range agents {
		wg.Add(1)

		go func(slot int, model string) {
			defer wg.Done()

			reporter.Progress(fmt.Sprintf("Querying agent %d in layer %d", slot+1, layer))

			var (
				text string
				err  error
			)

			if layer == 1 {
				text, err = e.complete(ctx, cfg, model, prompt)
			} else {
				reporter.Progress(fmt.Sprintf("Creating aggregator prompt for layer %d", layer))

				text, err = e.complete(ctx, cfg, cfg.AggregatorModel, aggregatorPrompt(prompt, previous))
			}

			if err != nil {
				failures[slot] = err

				reporter.Emit(core.StatusLevelError, fmt.Sprintf("Agent %d in layer %d failed: %v", slot+1, layer, err), false)
				e.logger.Warn("agent call failed", "layer", layer, "agent", slot+1, "model", model, "error", err)

				return
			}

			results[slot] = text

			reporter.Progress(fmt.Sprintf("Received response from agent %d in layer %d", slot+1, layer))
		}(i, model)
	}

	wg.Wait()

	outputs := make([]string, 0, len(agents))

	for slot := range agents {
		if failures[slot] == nil {
			outputs = append(outputs, results[slot])
		}
	}

	if len(outputs) == 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		return nil, &core.LayerError{Layer: layer}
	}

	return outputs, nil
}
