package engine

import (
	"fmt"
	"strings"
)

// probePrompt is the fixed prompt sent once to every configured model to
// check that it answers at all.
const probePrompt = "Test prompt"

// aggregatorPrompt builds the synthesis prompt served to every agent slot in
// layers after the first: the original request followed by the previous
// layer's numbered responses.
func aggregatorPrompt(original string, previous []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Original prompt: %s\n\nPrevious responses:\n", original)

	for i, response := range previous {
		fmt.Fprintf(&b, "%d. %s\n\n", i+1, response)
	}

	b.WriteString("Based on the above responses and the original prompt, provide an improved and comprehensive answer:")

	return b.String()
}

// finalPrompt builds the closing synthesis prompt from the original request
// and every layer's surviving responses, grouped and numbered by layer.
func finalPrompt(original string, layers [][]string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Original prompt: %s\n\nResponses from all layers:\n", original)

	for layer, responses := range layers {
		fmt.Fprintf(&b, "Layer %d:\n", layer+1)

		for i, response := range responses {
			fmt.Fprintf(&b, " %d. %s\n\n", i+1, response)
		}
	}

	b.WriteString("Considering all the responses from different layers and the original prompt, provide a final, comprehensive answer that strictly adheres to the original request:\n" +
		"1. Incorporate relevant information from all previous responses seamlessly.\n" +
		"2. Avoid referencing or acknowledging previous responses explicitly unless directed by the prompt.\n" +
		"3. Provide a complete and detailed reply addressing the original prompt.")

	return b.String()
}
