package store

import "time"

// BusinessInfo is the singleton business record. Provisioned externally,
// read-only from the agent's perspective.
type BusinessInfo struct {
	Name         string            `json:"name"`
	Address      string            `json:"address"`
	Phone        string            `json:"phone"`
	WorkingHours string            `json:"working_hours"`
	Hours        map[string]string `json:"hours,omitempty"`
	Timezone     string            `json:"timezone"`
}

type Service struct {
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
}

type ServiceCatalog struct {
	Services []Service `json:"services"`
}

// DaySchedule holds the slot state for one calendar date. BookedSlots is a
// subset of AvailableSlots; a slot present in both is not offered again.
type DaySchedule struct {
	AvailableSlots []string `json:"available_slots"`
	BookedSlots    []string `json:"booked_slots,omitempty"`
}

// Calendar maps YYYY-MM-DD date strings to their schedules.
type Calendar map[string]DaySchedule

type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type AppointmentDetails struct {
	Date            string   `json:"date"`
	Time            string   `json:"time"`
	Services        []string `json:"services"`
	TotalPrice      float64  `json:"total_price"`
	DurationMinutes int      `json:"duration_minutes"`
}

// Appointment is created exactly once per successful booking and never
// mutated afterwards.
type Appointment struct {
	ID        string             `json:"id"`
	Customer  Customer           `json:"customer"`
	Details   AppointmentDetails `json:"appointment"`
	CreatedAt time.Time          `json:"created_at"`
	Status    string             `json:"status"`
}
