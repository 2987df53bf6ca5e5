package format

import (
	"fmt"
	"strings"
	"testing"

	contractx "github.com/tanpawarit/Chative-Booking-Receptionist/agent/contract"
	storex "github.com/tanpawarit/Chative-Booking-Receptionist/agent/store"
	toolx "github.com/tanpawarit/Chative-Booking-Receptionist/agent/tool"
)

func success(tool string, result any) contractx.ToolResult {
	return contractx.ToolResult{Tool: tool, Success: true, Result: result}
}

func TestFormatEmptyResults(t *testing.T) {
	t.Parallel()

	got := Format(nil)
	if got != "I didn't find any specific information to help you with." {
		t.Fatalf("unexpected fallback: %q", got)
	}
}

func TestFormatFailure(t *testing.T) {
	t.Parallel()

	got := Format([]contractx.ToolResult{
		{Tool: "bookAppointment", Success: false, Error: "date is required"},
	})
	if got != "Error with bookAppointment: date is required" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestFormatServices(t *testing.T) {
	t.Parallel()

	catalog := storex.ServiceCatalog{Services: []storex.Service{
		{Name: "Haircut", Price: 45, DurationMinutes: 30},
		{Name: "Facial Treatment", Price: 62.5, DurationMinutes: 45},
	}}

	got := Format([]contractx.ToolResult{success("getServices", catalog)})
	want := strings.Join([]string{
		"Here are our services and prices:",
		"- Haircut - $45 (30 min)",
		"- Facial Treatment - $62.5 (45 min)",
		"",
		"Would you like to book an appointment?",
	}, "\n")
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatEmptyCatalog(t *testing.T) {
	t.Parallel()

	got := Format([]contractx.ToolResult{success("getServices", storex.ServiceCatalog{})})
	if got != "Sorry, there was an issue retrieving our services." {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestFormatAvailabilityTruncation(t *testing.T) {
	t.Parallel()

	slots := make([]string, 12)
	for i := range slots {
		slots[i] = fmt.Sprintf("%02d:00", 9+i)
	}
	out := toolx.AvailabilityResult{
		Available:       true,
		AvailableSlots:  slots,
		DurationMinutes: 30,
		Date:            "2025-06-02",
	}

	got := Format([]contractx.ToolResult{success("checkAvailability", out)})
	lines := strings.Split(got, "\n")

	if lines[0] != "Here are our available times for 2025-06-02 for a 30-minute appointment:" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	slotLines := 0
	for _, line := range lines {
		if strings.HasPrefix(line, "- ") {
			slotLines++
		}
	}
	if slotLines != 10 {
		t.Fatalf("slot lines = %d, want 10", slotLines)
	}
	if !strings.Contains(got, "... and 2 more times") {
		t.Fatalf("missing truncation note in:\n%s", got)
	}
	if lines[len(lines)-1] != "Which time works best for you?" {
		t.Fatalf("unexpected closing line: %q", lines[len(lines)-1])
	}
}

func TestFormatAvailabilityUnavailable(t *testing.T) {
	t.Parallel()

	out := toolx.AvailabilityResult{Available: false, Date: "2025-06-05"}
	got := Format([]contractx.ToolResult{success("checkAvailability", out)})
	want := "Sorry, we don't have any available slots for 2025-06-05.\nWould you like to try a different date?"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatBooking(t *testing.T) {
	t.Parallel()

	out := toolx.BookingResult{
		Success:       true,
		AppointmentID: "APT-20250602-4F7",
		Appointment: storex.Appointment{
			ID: "APT-20250602-4F7",
			Details: storex.AppointmentDetails{
				Date:            "2025-06-02",
				Time:            "10:00",
				Services:        []string{"Haircut", "Beard Trim"},
				TotalPrice:      70,
				DurationMinutes: 45,
			},
		},
	}

	got := Format([]contractx.ToolResult{success("bookAppointment", out)})
	for _, want := range []string{
		"Your appointment has been successfully booked!",
		"Date: 2025-06-02",
		"Time: 10:00",
		"Services: Haircut, Beard Trim",
		"Total: $70",
		"Duration: 45 minutes",
		"Appointment ID: APT-20250602-4F7",
		"I've sent a confirmation email",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in:\n%s", want, got)
		}
	}
}

func TestFormatPreservesResultOrder(t *testing.T) {
	t.Parallel()

	results := []contractx.ToolResult{
		success("getBusinessInfo", toolx.HoursInfo{WorkingHours: "09:00-19:00 (Mon-Fri)"}),
		success("getBusinessInfo", toolx.ContactInfo{Phone: "+1 (323) 555-0123"}),
		{Tool: "checkAvailability", Success: false, Error: "date is required"},
	}

	got := Format(results)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("line count = %d, want 3\n%s", len(lines), got)
	}
	if lines[0] != "Our business hours: 09:00-19:00 (Mon-Fri)" {
		t.Fatalf("unexpected first line: %q", lines[0])
	}
	if lines[1] != "Contact us: +1 (323) 555-0123" {
		t.Fatalf("unexpected second line: %q", lines[1])
	}
	if lines[2] != "Error with checkAvailability: date is required" {
		t.Fatalf("unexpected third line: %q", lines[2])
	}
}

func TestFormatUnrenderedResultTypes(t *testing.T) {
	t.Parallel()

	// Email confirmations have no reply template; a turn of only such
	// results renders as an empty string, not the fallback.
	got := Format([]contractx.ToolResult{
		success("sendEmailConfirmation", toolx.EmailResult{Success: true}),
	})
	if got != "" {
		t.Fatalf("expected empty reply, got %q", got)
	}
}

func TestFormatInfoTypeError(t *testing.T) {
	t.Parallel()

	got := Format([]contractx.ToolResult{
		success("getBusinessInfo", toolx.InfoTypeError{Error: "Unknown info type: parking"}),
	})
	if got != "Sorry, there was an issue retrieving our business information." {
		t.Fatalf("unexpected output: %q", got)
	}
}
