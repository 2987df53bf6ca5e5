package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"
	"github.com/google/uuid"

	contractx "github.com/tanpawarit/Chative-Booking-Receptionist/agent/contract"
	storex "github.com/tanpawarit/Chative-Booking-Receptionist/agent/store"
)

type BookingResult struct {
	Success       bool               `json:"success"`
	AppointmentID string             `json:"appointment_id"`
	Appointment   storex.Appointment `json:"appointment"`
	Message       string             `json:"message"`
}

func bookingToolInfo() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: ToolBookAppointment,
		Desc: "Book an appointment with customer details.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"customer_name":    {Type: schema.String, Desc: "Customer's full name", Required: true},
			"customer_phone":   {Type: schema.String, Desc: "Customer's phone number", Required: true},
			"customer_email":   {Type: schema.String, Desc: "Customer's email address", Required: true},
			"date":             {Type: schema.String, Desc: "Appointment date in YYYY-MM-DD format", Required: true},
			"time":             {Type: schema.String, Desc: "Appointment time in HH:MM format", Required: true},
			"services":         {Type: schema.String, Desc: "Service names, e.g. [\"Haircut\",\"Beard Trim\"]", Required: true},
			"total_price":      {Type: schema.Number, Desc: "Total price for all services", Required: true},
			"duration_minutes": {Type: schema.Integer, Desc: "Total duration in minutes", Required: true},
		}),
	}
}

// bookAppointment appends the appointment record and marks the slot booked.
// It performs no availability re-check and no collision check against an
// already-booked slot; callers are expected to have checked availability
// first, with no transactional guarantee linking the two calls.
func (r *Registry) bookAppointment(ctx context.Context, args []contractx.Value) (any, error) {
	customerName, err := textArg(args, 0, "customer_name")
	if err != nil {
		return nil, err
	}
	customerPhone, err := textArg(args, 1, "customer_phone")
	if err != nil {
		return nil, err
	}
	customerEmail, err := textArg(args, 2, "customer_email")
	if err != nil {
		return nil, err
	}
	date, err := textArg(args, 3, "date")
	if err != nil {
		return nil, err
	}
	timeOfDay, err := textArg(args, 4, "time")
	if err != nil {
		return nil, err
	}
	rawServices, err := textArg(args, 5, "services")
	if err != nil {
		return nil, err
	}
	totalPrice, err := floatArg(args, 6, "total_price")
	if err != nil {
		return nil, err
	}
	duration, err := intArg(args, 7, "duration_minutes")
	if err != nil {
		return nil, err
	}

	appointmentID := newAppointmentID(date)
	appt := storex.Appointment{
		ID: appointmentID,
		Customer: storex.Customer{
			Name:  customerName,
			Phone: customerPhone,
			Email: customerEmail,
		},
		Details: storex.AppointmentDetails{
			Date:            date,
			Time:            timeOfDay,
			Services:        parseServiceList(rawServices),
			TotalPrice:      totalPrice,
			DurationMinutes: duration,
		},
		CreatedAt: r.now(),
		Status:    "confirmed",
	}

	if err := r.store.AppendAppointment(ctx, appt); err != nil {
		return nil, err
	}

	cal, err := r.store.Calendar(ctx)
	if err != nil {
		return nil, err
	}
	if day, ok := cal[date]; ok {
		day.BookedSlots = append(day.BookedSlots, timeOfDay)
		cal[date] = day
		if err := r.store.SaveCalendar(ctx, cal); err != nil {
			return nil, err
		}
	}

	return BookingResult{
		Success:       true,
		AppointmentID: appointmentID,
		Appointment:   appt,
		Message:       fmt.Sprintf("Appointment %s successfully booked for %s at %s", appointmentID, date, timeOfDay),
	}, nil
}

// newAppointmentID builds identifiers like APT-20250602-4F7.
func newAppointmentID(date string) string {
	suffix := strings.ToUpper(uuid.NewString()[:3])
	return fmt.Sprintf("APT-%s-%s", strings.ReplaceAll(date, "-", ""), suffix)
}

// parseServiceList normalizes the free-text services argument, which arrives
// as a single piece like ["Haircut"] after comma splitting upstream.
func parseServiceList(raw string) []string {
	trimmed := strings.Trim(strings.TrimSpace(raw), "[]")
	if trimmed == "" {
		return nil
	}

	parts := strings.Split(trimmed, ",")
	services := make([]string, 0, len(parts))
	for _, part := range parts {
		name := strings.Trim(strings.TrimSpace(part), `"'`)
		if name != "" {
			services = append(services, name)
		}
	}
	return services
}
