// Package format renders tool-execution results into a single reply.
package format

import (
	"fmt"
	"strconv"
	"strings"

	contractx "github.com/tanpawarit/Chative-Booking-Receptionist/agent/contract"
	storex "github.com/tanpawarit/Chative-Booking-Receptionist/agent/store"
	toolx "github.com/tanpawarit/Chative-Booking-Receptionist/agent/tool"
)

const (
	fallbackReply = "I didn't find any specific information to help you with."

	// At most this many slot times are listed before truncating.
	maxSlotsShown = 10
)

// Format renders the results in input order, never reordering or
// deduplicating. Failures become inline error lines; successes use
// per-operation templates.
func Format(results []contractx.ToolResult) string {
	if len(results) == 0 {
		return fallbackReply
	}

	var lines []string
	for _, res := range results {
		if !res.Success {
			lines = append(lines, fmt.Sprintf("Error with %s: %s", res.Tool, res.Error))
			continue
		}

		switch out := res.Result.(type) {
		case storex.ServiceCatalog:
			lines = append(lines, formatServices(out)...)
		case toolx.AvailabilityResult:
			lines = append(lines, formatAvailability(out)...)
		case toolx.BookingResult:
			lines = append(lines, formatBooking(out)...)
		case toolx.HoursInfo:
			lines = append(lines, fmt.Sprintf("Our business hours: %s", out.WorkingHours))
		case toolx.ContactInfo:
			lines = append(lines, fmt.Sprintf("Contact us: %s", out.Phone))
		case toolx.AddressInfo:
			lines = append(lines, fmt.Sprintf("Address: %s", out.Address))
		case storex.BusinessInfo:
			lines = append(lines, fmt.Sprintf("Our business hours: %s", out.WorkingHours))
		case toolx.InfoTypeError:
			lines = append(lines, "Sorry, there was an issue retrieving our business information.")
		}
	}

	return strings.Join(lines, "\n")
}

func formatServices(catalog storex.ServiceCatalog) []string {
	if len(catalog.Services) == 0 {
		return []string{"Sorry, there was an issue retrieving our services."}
	}

	lines := []string{"Here are our services and prices:"}
	for _, svc := range catalog.Services {
		lines = append(lines, fmt.Sprintf("- %s - $%s (%d min)", svc.Name, formatPrice(svc.Price), svc.DurationMinutes))
	}
	lines = append(lines, "", "Would you like to book an appointment?")
	return lines
}

func formatAvailability(out toolx.AvailabilityResult) []string {
	if !out.Available {
		return []string{
			fmt.Sprintf("Sorry, we don't have any available slots for %s.", out.Date),
			"Would you like to try a different date?",
		}
	}

	lines := []string{
		fmt.Sprintf("Here are our available times for %s for a %d-minute appointment:", out.Date, out.DurationMinutes),
	}
	for i, slot := range out.AvailableSlots {
		if i == maxSlotsShown {
			break
		}
		lines = append(lines, fmt.Sprintf("- %s", slot))
	}
	if extra := len(out.AvailableSlots) - maxSlotsShown; extra > 0 {
		lines = append(lines, fmt.Sprintf("... and %d more times", extra))
	}
	lines = append(lines, "", "Which time works best for you?")
	return lines
}

func formatBooking(out toolx.BookingResult) []string {
	if !out.Success {
		return []string{"Sorry, there was an error creating your appointment. Please try again."}
	}

	details := out.Appointment.Details
	return []string{
		"Your appointment has been successfully booked!",
		fmt.Sprintf("Date: %s", details.Date),
		fmt.Sprintf("Time: %s", details.Time),
		fmt.Sprintf("Services: %s", strings.Join(details.Services, ", ")),
		fmt.Sprintf("Total: $%s", formatPrice(details.TotalPrice)),
		fmt.Sprintf("Duration: %d minutes", details.DurationMinutes),
		fmt.Sprintf("Appointment ID: %s", out.AppointmentID),
		"",
		"I've sent a confirmation email to your address. Is there anything else I can help you with?",
	}
}

// formatPrice keeps whole-dollar prices free of trailing zeros ($45, $62.5).
func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
