package engine

import (
	"context"
	"fmt"

	"github.com/hupe1980/agentblend/core"
)

// validateModels probes every configured model once, sequentially and in
// configuration order, and returns the order-preserving subset that
// answered. Failed probes are tolerated and reported; only an empty result
// is an error. A cancelled context wins over a ValidationError so callers
// can tell shutdown apart from a dead pool.
func (e *Engine) validateModels(ctx context.Context, cfg core.Config, reporter *core.Reporter) ([]string, error) {
	reporter.Progress("Validating models")

	valid := make([]string, 0, len(cfg.Models))

	for _, model := range cfg.Models {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if _, err := e.complete(ctx, cfg, model, probePrompt); err != nil {
			reporter.Emit(core.StatusLevelError, fmt.Sprintf("Model %q failed validation: %v", model, err), false)
			e.logger.Warn("model failed validation", "model", model, "error", err)

			continue
		}

		valid = append(valid, model)
	}

	if len(valid) == 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		return nil, &core.ValidationError{Reason: "no valid models available"}
	}

	reporter.Progress(fmt.Sprintf("Validated %d models", len(valid)))

	return valid, nil
}
