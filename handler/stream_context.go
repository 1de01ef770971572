package handler

import (
	"encoding/json"
	"fmt"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// StreamContext is a Context with an open datastar event stream.
type StreamContext interface {
	Context

	// SendComponent patches one component.
	SendComponent(component templ.Component, opts ...TemplOption) error

	// SendMultiple patches several components in order.
	SendMultiple(patches ...TemplPatch) error

	// SendSignals merges signals into the client's signal store. signals
	// must marshal to a JSON object.
	SendSignals(signals any) error
}

type streamContext struct {
	Context
	sse *datastar.ServerSentEventGenerator
}

func (c *streamContext) SendComponent(component templ.Component, opts ...TemplOption) error {
	return c.sse.PatchElementTempl(component, opts...)
}

func (c *streamContext) SendMultiple(patches ...TemplPatch) error {
	for _, p := range patches {
		if err := c.sse.PatchElementTempl(p.Component, p.Options...); err != nil {
			return err
		}
	}
	return nil
}

func (c *streamContext) SendSignals(signals any) error {
	data, err := json.Marshal(signals)
	if err != nil {
		return fmt.Errorf("marshal signals: %w", err)
	}
	return c.sse.PatchSignals(data)
}
