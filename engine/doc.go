// Package engine implements the layered response synthesis pipeline at the
// heart of AgentBlend.
//
// A run takes one conversation and one configuration and produces a single
// assistant answer by combining the outputs of several models:
//
//  1. Every configured model is probed once; models that answer form the
//     validated pool for the run.
//  2. Layers execute strictly in sequence. Within a layer, a random sample
//     of the pool is queried concurrently; the first layer answers the user
//     prompt directly, later layers synthesize the previous layer's outputs
//     through the aggregator model.
//  3. A final aggregation call folds every layer's surviving outputs into
//     the answer that is appended to the conversation.
//
// Individual agent failures inside a layer are tolerated; a layer fails only
// when every agent in it fails. Progress is reported through a core.Reporter
// so observers see validation, per-layer, and per-agent stages as they
// happen.
//
// The Engine is stateless across runs: everything a run needs travels in
// its arguments, so one Engine value can serve many concurrent runs.
package engine
