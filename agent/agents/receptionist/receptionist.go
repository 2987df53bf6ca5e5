// Package receptionist implements the conversational booking agent. An Agent
// owns one session: it is created at session start, cleared by Reset, and
// discarded at session end. It is not safe for concurrent turns; deployments
// serving several sessions give each its own Agent.
package receptionist

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	contractx "github.com/tanpawarit/Chative-Booking-Receptionist/agent/contract"
	promptx "github.com/tanpawarit/Chative-Booking-Receptionist/agent/prompt"
)

var ErrInvalidMessage = errors.New("message is empty")

const (
	// Only the most recent turns are supplied to the model; older turns stay
	// in full history but are excluded from the prompt window.
	defaultHistoryWindow = 10

	apologyReply = "Sorry, I'm having trouble connecting to the AI service. Please try again in a moment."
)

type Agent struct {
	model    contractx.ChatModel
	executor contractx.ToolExecutor

	runner compose.Runnable[turnInput, turnOutput]

	history []*schema.Message
	window  int
	now     func() time.Time
}

type Option func(*Agent)

func WithClock(now func() time.Time) Option {
	return func(a *Agent) {
		if now != nil {
			a.now = now
		}
	}
}

func WithHistoryWindow(n int) Option {
	return func(a *Agent) {
		if n > 0 {
			a.window = n
		}
	}
}

func New(model contractx.ChatModel, executor contractx.ToolExecutor, opts ...Option) (*Agent, error) {
	if model == nil {
		return nil, errors.New("chat model is required")
	}
	if executor == nil {
		return nil, errors.New("tool executor is required")
	}

	a := &Agent{
		model:    model,
		executor: executor,
		window:   defaultHistoryWindow,
		now:      time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}

	runner, err := a.compileTurnGraph(context.Background())
	if err != nil {
		return nil, err
	}
	a.runner = runner

	return a, nil
}

// Chat runs one turn end to end and returns the final reply. A model
// transport failure degrades to an apology reply; it never surfaces as an
// error. Only an empty message is rejected.
func (a *Agent) Chat(ctx context.Context, userMessage string) (string, error) {
	text := strings.TrimSpace(userMessage)
	if text == "" {
		return "", ErrInvalidMessage
	}

	a.history = append(a.history, schema.UserMessage(text))

	out, err := a.runner.Invoke(ctx, turnInput{
		Text:         text,
		SystemPrompt: promptx.Receptionist(a.now().Format("2006-01-02")),
		Window:       a.promptWindow(),
	})
	if err != nil {
		return "", err
	}

	a.history = append(a.history, schema.AssistantMessage(out.Reply, nil))
	return out.Reply, nil
}

// Reset clears the conversation history unconditionally.
func (a *Agent) Reset() {
	a.history = nil
}

// promptWindow returns the trailing window of history. The just-appended user
// message is part of the window and is also sent again as the current turn
// message, matching the prompt-assembly behavior this agent was built to.
func (a *Agent) promptWindow() []*schema.Message {
	if len(a.history) <= a.window {
		return append([]*schema.Message(nil), a.history...)
	}
	return append([]*schema.Message(nil), a.history[len(a.history)-a.window:]...)
}
