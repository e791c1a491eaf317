package handler

import (
	"github.com/starfederation/datastar-go/datastar"
)

// StreamContext is the Context handed to an SSE handler. Writes go straight
// to the open event stream; any error means the client is gone.
type StreamContext interface {
	Context
	SendComponent(component TemplComponent, opts ...TemplOption) error
	SendSignals(signals any) error
}

type stream struct {
	Context
	events *datastar.ServerSentEventGenerator
}

func (s *stream) SendComponent(component TemplComponent, opts ...TemplOption) error {
	return s.events.PatchElementTempl(component, opts...)
}

func (s *stream) SendSignals(signals any) error {
	return s.events.MarshalAndPatchSignals(signals)
}
