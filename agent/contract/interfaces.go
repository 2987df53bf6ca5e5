package contract

import (
	"context"

	"github.com/cloudwego/eino/schema"
)

// ChatModel is the chat-completion capability the agent depends on.
type ChatModel interface {
	Generate(ctx context.Context, messages []*schema.Message) (*schema.Message, error)
}

// ToolExecutor resolves and runs a single invocation. Execution failures are
// reported inside the ToolResult, never as a Go error.
type ToolExecutor interface {
	Execute(ctx context.Context, inv ToolInvocation) ToolResult
}
