package tool

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	contractx "github.com/tanpawarit/Chative-Booking-Receptionist/agent/contract"
)

// Executor resolves invocations against the registry and normalizes every
// outcome into a ToolResult. No failure escapes as a Go error; a failed
// operation never aborts the turn.
type Executor struct {
	registry *Registry
}

func NewExecutor(registry *Registry) *Executor {
	return &Executor{registry: registry}
}

func (e *Executor) Execute(ctx context.Context, inv contractx.ToolInvocation) (res contractx.ToolResult) {
	t, ok := e.registry.Lookup(inv.Name)
	if !ok {
		return contractx.ToolResult{
			Tool:  inv.Name,
			Error: fmt.Sprintf("Unknown tool: %s", inv.Name),
		}
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("tool", inv.Name).Interface("panic", r).Msg("tool handler panicked")
			res = contractx.ToolResult{
				Tool:  inv.Name,
				Error: fmt.Sprintf("%v", r),
			}
		}
	}()

	log.Debug().Str("tool", inv.Name).Int("args", len(inv.Args)).Msg("executing tool")

	out, err := t.Run(ctx, inv.Args)
	if err != nil {
		log.Warn().Err(err).Str("tool", inv.Name).Msg("tool execution failed")
		return contractx.ToolResult{
			Tool:  inv.Name,
			Error: err.Error(),
		}
	}

	return contractx.ToolResult{
		Tool:    inv.Name,
		Success: true,
		Result:  out,
	}
}
