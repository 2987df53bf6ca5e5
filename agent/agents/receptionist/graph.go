package receptionist

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog/log"

	contractx "github.com/tanpawarit/Chative-Booking-Receptionist/agent/contract"
	formatx "github.com/tanpawarit/Chative-Booking-Receptionist/agent/format"
	interpretx "github.com/tanpawarit/Chative-Booking-Receptionist/agent/interpret"
)

type turnInput struct {
	Text         string
	SystemPrompt string
	Window       []*schema.Message
}

type turnOutput struct {
	Reply string
}

type turnState struct {
	Text        string
	ModelReply  string
	UseTools    bool
	Invocations []contractx.ToolInvocation
}

func (a *Agent) compileTurnGraph(ctx context.Context) (compose.Runnable[turnInput, turnOutput], error) {
	graph := compose.NewGraph[turnInput, turnOutput]()

	if err := graph.AddLambdaNode("call_model",
		compose.InvokableLambda(func(ctx context.Context, in turnInput) (*turnState, error) {
			return a.callModel(ctx, in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node call_model: %w", err)
	}

	if err := graph.AddLambdaNode("interpret",
		compose.InvokableLambda(func(ctx context.Context, in *turnState) (*turnState, error) {
			return interpretTurn(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node interpret: %w", err)
	}

	if err := graph.AddLambdaNode("tool_path",
		compose.InvokableLambda(func(ctx context.Context, in *turnState) (turnOutput, error) {
			return a.runTools(ctx, in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node tool_path: %w", err)
	}

	if err := graph.AddLambdaNode("direct_reply",
		compose.InvokableLambda(func(ctx context.Context, in *turnState) (turnOutput, error) {
			if in == nil {
				return turnOutput{}, fmt.Errorf("%w: turn state is nil", contractx.ErrValidation)
			}
			return turnOutput{Reply: in.ModelReply}, nil
		}),
	); err != nil {
		return nil, fmt.Errorf("add node direct_reply: %w", err)
	}

	branch := compose.NewGraphBranch(
		func(ctx context.Context, in *turnState) (string, error) {
			if in == nil {
				return "", fmt.Errorf("%w: turn state is nil", contractx.ErrValidation)
			}
			if in.UseTools && len(in.Invocations) > 0 {
				return "tool_path", nil
			}
			return "direct_reply", nil
		},
		map[string]bool{
			"tool_path":    true,
			"direct_reply": true,
		},
	)

	if err := graph.AddEdge(compose.START, "call_model"); err != nil {
		return nil, fmt.Errorf("add edge start->call_model: %w", err)
	}
	if err := graph.AddEdge("call_model", "interpret"); err != nil {
		return nil, fmt.Errorf("add edge call_model->interpret: %w", err)
	}
	if err := graph.AddBranch("interpret", branch); err != nil {
		return nil, fmt.Errorf("add turn branch: %w", err)
	}
	if err := graph.AddEdge("tool_path", compose.END); err != nil {
		return nil, fmt.Errorf("add edge tool_path->end: %w", err)
	}
	if err := graph.AddEdge("direct_reply", compose.END); err != nil {
		return nil, fmt.Errorf("add edge direct_reply->end: %w", err)
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("receptionist.turn"))
	if err != nil {
		return nil, fmt.Errorf("compile turn graph: %w", err)
	}
	return runner, nil
}

// callModel obtains the model's free-text reply. Transport failures degrade to
// a fixed apology that flows through the rest of the turn like any reply.
func (a *Agent) callModel(ctx context.Context, in turnInput) (*turnState, error) {
	messages := make([]*schema.Message, 0, len(in.Window)+2)
	messages = append(messages, schema.SystemMessage(in.SystemPrompt))
	messages = append(messages, in.Window...)
	messages = append(messages, schema.UserMessage(in.Text))

	reply, err := a.model.Generate(ctx, messages)
	if err != nil {
		log.Warn().Err(fmt.Errorf("%w: %v", contractx.ErrModelInvoke, err)).Msg("model call failed, degrading to apology reply")
		return &turnState{Text: in.Text, ModelReply: apologyReply}, nil
	}
	if reply == nil {
		log.Warn().Msg("model returned nil message, degrading to apology reply")
		return &turnState{Text: in.Text, ModelReply: apologyReply}, nil
	}

	return &turnState{Text: in.Text, ModelReply: reply.Content}, nil
}

// interpretTurn gates on the user message and, when triggered, extracts
// embedded invocations from the model reply.
func interpretTurn(in *turnState) (*turnState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: turn state is nil", contractx.ErrValidation)
	}

	in.UseTools = interpretx.ShouldUseTools(in.Text)
	if in.UseTools {
		in.Invocations = interpretx.ParseInvocations(in.ModelReply)
	}
	return in, nil
}

// runTools executes the extracted invocations in order and formats the
// aggregate results into the final reply.
func (a *Agent) runTools(ctx context.Context, in *turnState) (turnOutput, error) {
	if in == nil {
		return turnOutput{}, fmt.Errorf("%w: turn state is nil", contractx.ErrValidation)
	}

	results := make([]contractx.ToolResult, 0, len(in.Invocations))
	for _, inv := range in.Invocations {
		results = append(results, a.executor.Execute(ctx, inv))
	}
	return turnOutput{Reply: formatx.Format(results)}, nil
}
