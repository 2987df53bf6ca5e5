package tool

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog/log"

	contractx "github.com/tanpawarit/Chative-Booking-Receptionist/agent/contract"
)

type EmailResult struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	AppointmentID string `json:"appointment_id"`
}

func emailToolInfo() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: ToolSendEmailConfirmation,
		Desc: "Send an email confirmation for a booked appointment.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"appointment_id": {Type: schema.String, Desc: "ID of the booked appointment", Required: true},
			"customer_email": {Type: schema.String, Desc: "Customer's email address", Required: true},
		}),
	}
}

// sendEmailConfirmation is a logging-only stub; no mail is dispatched.
func (r *Registry) sendEmailConfirmation(ctx context.Context, args []contractx.Value) (any, error) {
	appointmentID, err := textArg(args, 0, "appointment_id")
	if err != nil {
		return nil, err
	}
	customerEmail, err := textArg(args, 1, "customer_email")
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("appointment_id", appointmentID).
		Str("email", customerEmail).
		Msg("confirmation email sent")

	return EmailResult{
		Success:       true,
		Message:       fmt.Sprintf("Confirmation email sent to %s", customerEmail),
		AppointmentID: appointmentID,
	}, nil
}
