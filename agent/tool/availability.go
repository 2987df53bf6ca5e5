package tool

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/schema"

	contractx "github.com/tanpawarit/Chative-Booking-Receptionist/agent/contract"
)

// All slots are fixed 30-minute units regardless of service duration.
const slotSizeMinutes = 30

type AvailabilityResult struct {
	Available       bool     `json:"available"`
	AvailableSlots  []string `json:"available_slots"`
	DurationMinutes int      `json:"duration_minutes,omitempty"`
	Date            string   `json:"date"`
	Message         string   `json:"message"`
}

func availabilityToolInfo() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: ToolCheckAvailability,
		Desc: "Check available time slots for a given date and duration.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"date":             {Type: schema.String, Desc: "Date in YYYY-MM-DD format", Required: true},
			"duration_minutes": {Type: schema.Integer, Desc: "Appointment duration in minutes", Required: true},
		}),
	}
}

func (r *Registry) checkAvailability(ctx context.Context, args []contractx.Value) (any, error) {
	date, err := textArg(args, 0, "date")
	if err != nil {
		return nil, err
	}
	duration, err := intArg(args, 1, "duration_minutes")
	if err != nil {
		return nil, err
	}

	cal, err := r.store.Calendar(ctx)
	if err != nil {
		return nil, err
	}

	day, ok := cal[date]
	if !ok {
		return AvailabilityResult{
			Available:      false,
			AvailableSlots: []string{},
			Date:           date,
			Message:        fmt.Sprintf("No calendar data available for %s", date),
		}, nil
	}

	free := freeSlots(day.AvailableSlots, day.BookedSlots)

	var suitable []string
	if duration <= slotSizeMinutes {
		suitable = free
	} else {
		// Longer appointments need ceil(duration/30) consecutive entries.
		// Windows are taken over the filtered list in order; entries are
		// assumed contiguous by construction of the calendar data.
		needed := (duration + slotSizeMinutes - 1) / slotSizeMinutes
		for i := 0; i+needed <= len(free); i++ {
			suitable = append(suitable, free[i])
		}
	}
	if suitable == nil {
		suitable = []string{}
	}

	return AvailabilityResult{
		Available:       len(suitable) > 0,
		AvailableSlots:  suitable,
		DurationMinutes: duration,
		Date:            date,
		Message:         fmt.Sprintf("Found %d available slots for %d minutes", len(suitable), duration),
	}, nil
}

func freeSlots(available, booked []string) []string {
	bookedSet := make(map[string]struct{}, len(booked))
	for _, slot := range booked {
		bookedSet[slot] = struct{}{}
	}

	free := make([]string, 0, len(available))
	for _, slot := range available {
		if _, taken := bookedSet[slot]; !taken {
			free = append(free, slot)
		}
	}
	return free
}
