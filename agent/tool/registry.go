package tool

import (
	"context"
	"errors"
	"time"

	"github.com/cloudwego/eino/schema"

	contractx "github.com/tanpawarit/Chative-Booking-Receptionist/agent/contract"
	storex "github.com/tanpawarit/Chative-Booking-Receptionist/agent/store"
)

const (
	ToolGetBusinessInfo       = "getBusinessInfo"
	ToolGetServices           = "getServices"
	ToolCheckAvailability     = "checkAvailability"
	ToolBookAppointment       = "bookAppointment"
	ToolSendEmailConfirmation = "sendEmailConfirmation"
)

// Handler runs one operation against positional arguments. A returned error is
// an operation failure; domain-level "not found" answers are in-band results.
type Handler func(ctx context.Context, args []contractx.Value) (any, error)

// Tool pairs a handler with its advisory parameter documentation. The declared
// shape is not enforced anywhere; handlers do their own argument checking.
type Tool struct {
	Info *schema.ToolInfo
	Run  Handler
}

// Registry is the fixed operation table. It is built once at startup and never
// mutated afterwards.
type Registry struct {
	store storex.Store
	now   func() time.Time

	tools map[string]Tool
	order []string
}

type RegistryOption func(*Registry)

// WithClock overrides the timestamp source used for booking records.
func WithClock(now func() time.Time) RegistryOption {
	return func(r *Registry) {
		if now != nil {
			r.now = now
		}
	}
}

func NewRegistry(st storex.Store, opts ...RegistryOption) (*Registry, error) {
	if st == nil {
		return nil, errors.New("store is required")
	}

	r := &Registry{
		store: st,
		now:   time.Now,
		tools: make(map[string]Tool, 5),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	r.register(Tool{Info: businessInfoToolInfo(), Run: r.getBusinessInfo})
	r.register(Tool{Info: servicesToolInfo(), Run: r.getServices})
	r.register(Tool{Info: availabilityToolInfo(), Run: r.checkAvailability})
	r.register(Tool{Info: bookingToolInfo(), Run: r.bookAppointment})
	r.register(Tool{Info: emailToolInfo(), Run: r.sendEmailConfirmation})

	return r, nil
}

func (r *Registry) register(t Tool) {
	r.tools[t.Info.Name] = t
	r.order = append(r.order, t.Info.Name)
}

// Lookup returns the entry for an operation name.
func (r *Registry) Lookup(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Infos lists the advisory tool descriptions in registration order.
func (r *Registry) Infos() []*schema.ToolInfo {
	infos := make([]*schema.ToolInfo, 0, len(r.order))
	for _, name := range r.order {
		infos = append(infos, r.tools[name].Info)
	}
	return infos
}
