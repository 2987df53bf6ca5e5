package tool

import (
	"context"
	"reflect"
	"regexp"
	"testing"
	"time"

	contractx "github.com/tanpawarit/Chative-Booking-Receptionist/agent/contract"
)

var appointmentIDPattern = regexp.MustCompile(`^APT-20250602-[A-Z0-9]{3}$`)

func bookingArgs() []contractx.Value {
	return []contractx.Value{
		contractx.TextValue("Jane Doe"),
		contractx.TextValue("555-1111"),
		contractx.TextValue("jane@x.com"),
		contractx.TextValue("2025-06-02"),
		contractx.TextValue("10:00"),
		contractx.TextValue(`["Haircut"]`),
		contractx.IntValue(45),
		contractx.IntValue(30),
	}
}

func TestBookAppointment(t *testing.T) {
	t.Parallel()

	st := seededStore()
	bookedAt := time.Date(2025, 6, 1, 15, 4, 5, 0, time.UTC)
	executor := newTestExecutor(t, st, WithClock(func() time.Time { return bookedAt }))

	res := executor.Execute(context.Background(), contractx.ToolInvocation{
		Name: ToolBookAppointment,
		Args: bookingArgs(),
	})
	if !res.Success {
		t.Fatalf("bookAppointment failed: %s", res.Error)
	}
	out, ok := res.Result.(BookingResult)
	if !ok {
		t.Fatalf("unexpected result type: %T", res.Result)
	}

	if !appointmentIDPattern.MatchString(out.AppointmentID) {
		t.Fatalf("appointment id %q does not match %s", out.AppointmentID, appointmentIDPattern)
	}
	if out.Appointment.ID != out.AppointmentID {
		t.Fatalf("record id %s != result id %s", out.Appointment.ID, out.AppointmentID)
	}
	if out.Appointment.Status != "confirmed" {
		t.Fatalf("status = %s, want confirmed", out.Appointment.Status)
	}
	if !out.Appointment.CreatedAt.Equal(bookedAt) {
		t.Fatalf("created at = %v, want %v", out.Appointment.CreatedAt, bookedAt)
	}
	if got := out.Appointment.Details.Services; !reflect.DeepEqual(got, []string{"Haircut"}) {
		t.Fatalf("services = %v, want [Haircut]", got)
	}
	if out.Appointment.Customer.Name != "Jane Doe" {
		t.Fatalf("customer = %s, want Jane Doe", out.Appointment.Customer.Name)
	}

	if len(st.appointments) != 1 {
		t.Fatalf("appointments stored = %d, want 1", len(st.appointments))
	}
	if got := st.calendar["2025-06-02"].BookedSlots; !reflect.DeepEqual(got, []string{"10:00"}) {
		t.Fatalf("booked slots = %v, want [10:00]", got)
	}
}

func TestBookThenCheckExcludesSlot(t *testing.T) {
	t.Parallel()

	st := seededStore()
	executor := newTestExecutor(t, st)
	ctx := context.Background()

	res := executor.Execute(ctx, contractx.ToolInvocation{Name: ToolBookAppointment, Args: bookingArgs()})
	if !res.Success {
		t.Fatalf("bookAppointment failed: %s", res.Error)
	}

	out := checkAvailability(t, executor, "2025-06-02", 30)
	for _, slot := range out.AvailableSlots {
		if slot == "10:00" {
			t.Fatal("booked slot still offered as available")
		}
	}
	if len(out.AvailableSlots) != 5 {
		t.Fatalf("got %d slots after booking, want 5", len(out.AvailableSlots))
	}
}

func TestBookAppointmentUnknownDateSkipsCalendar(t *testing.T) {
	t.Parallel()

	st := seededStore()
	executor := newTestExecutor(t, st)

	args := bookingArgs()
	args[3] = contractx.TextValue("2025-12-25")
	res := executor.Execute(context.Background(), contractx.ToolInvocation{
		Name: ToolBookAppointment,
		Args: args,
	})

	// The record is still appended even when the date has no calendar entry.
	if !res.Success {
		t.Fatalf("bookAppointment failed: %s", res.Error)
	}
	if len(st.appointments) != 1 {
		t.Fatalf("appointments stored = %d, want 1", len(st.appointments))
	}
	if _, ok := st.calendar["2025-12-25"]; ok {
		t.Fatal("calendar entry should not be created for unknown date")
	}
}

func TestBookAppointmentSameSlotTwice(t *testing.T) {
	t.Parallel()

	st := seededStore()
	executor := newTestExecutor(t, st)
	ctx := context.Background()

	first := executor.Execute(ctx, contractx.ToolInvocation{Name: ToolBookAppointment, Args: bookingArgs()})
	second := executor.Execute(ctx, contractx.ToolInvocation{Name: ToolBookAppointment, Args: bookingArgs()})

	// Bookings are append-only with no collision check, so both succeed
	// and the slot ends up marked booked twice.
	if !first.Success || !second.Success {
		t.Fatalf("expected both bookings to succeed: %s / %s", first.Error, second.Error)
	}
	if len(st.appointments) != 2 {
		t.Fatalf("appointments stored = %d, want 2", len(st.appointments))
	}
	if got := st.calendar["2025-06-02"].BookedSlots; !reflect.DeepEqual(got, []string{"10:00", "10:00"}) {
		t.Fatalf("booked slots = %v, want duplicated 10:00", got)
	}
}

func TestBookAppointmentMultipleServices(t *testing.T) {
	t.Parallel()

	executor := newTestExecutor(t, seededStore())

	args := bookingArgs()
	args[5] = contractx.TextValue(`["Haircut", 'Beard Trim']`)
	args[6] = contractx.IntValue(70)
	args[7] = contractx.IntValue(45)

	res := executor.Execute(context.Background(), contractx.ToolInvocation{
		Name: ToolBookAppointment,
		Args: args,
	})
	if !res.Success {
		t.Fatalf("bookAppointment failed: %s", res.Error)
	}
	out := res.Result.(BookingResult)
	want := []string{"Haircut", "Beard Trim"}
	if !reflect.DeepEqual(out.Appointment.Details.Services, want) {
		t.Fatalf("services = %v, want %v", out.Appointment.Details.Services, want)
	}
	if out.Appointment.Details.TotalPrice != 70 {
		t.Fatalf("total price = %v, want 70", out.Appointment.Details.TotalPrice)
	}
}

func TestParseServiceList(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{"bracketed single", `["Haircut"]`, []string{"Haircut"}},
		{"bare name", "Haircut", []string{"Haircut"}},
		{"mixed quotes", `["Haircut", 'Hair Wash']`, []string{"Haircut", "Hair Wash"}},
		{"empty brackets", "[]", nil},
		{"blank", "   ", nil},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := parseServiceList(tc.raw); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("parseServiceList(%q) = %#v, want %#v", tc.raw, got, tc.want)
			}
		})
	}
}
