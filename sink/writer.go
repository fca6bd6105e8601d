package sink

import (
	"io"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"github.com/hupe1980/agentblend/core"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONWriter renders one frame per line to an io.Writer. Writes are
// serialized, so a single writer can safely back sinks shared across
// concurrent runs.
type JSONWriter struct {
	mu  sync.Mutex
	enc *jsoniter.Encoder
}

// NewJSONWriter creates a sink that writes line-delimited JSON frames to w.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{enc: json.NewEncoder(w)}
}

// Send implements core.Sink.
func (s *JSONWriter) Send(ev core.StatusEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.enc.Encode(NewFrame(ev))
}
