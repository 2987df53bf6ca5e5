package tool

import (
	"context"

	"github.com/cloudwego/eino/schema"

	contractx "github.com/tanpawarit/Chative-Booking-Receptionist/agent/contract"
)

func servicesToolInfo() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: ToolGetServices,
		Desc: "Get all available services with prices and durations.",
	}
}

func (r *Registry) getServices(ctx context.Context, args []contractx.Value) (any, error) {
	return r.store.Services(ctx)
}
