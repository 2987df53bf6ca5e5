package tool

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/schema"

	contractx "github.com/tanpawarit/Chative-Booking-Receptionist/agent/contract"
)

type HoursInfo struct {
	WorkingHours  string            `json:"working_hours"`
	DetailedHours map[string]string `json:"detailed_hours,omitempty"`
	Timezone      string            `json:"timezone"`
}

type ContactInfo struct {
	Phone string `json:"phone"`
	Name  string `json:"name"`
}

type AddressInfo struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

// InfoTypeError is the in-band answer for an unrecognized info type. It is a
// result, not an execution failure.
type InfoTypeError struct {
	Error string `json:"error"`
}

func businessInfoToolInfo() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: ToolGetBusinessInfo,
		Desc: "Get business information (hours, contact, address, or all).",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"info_type": {Type: schema.String, Desc: "One of: hours, contact, address, all", Required: true},
		}),
	}
}

func (r *Registry) getBusinessInfo(ctx context.Context, args []contractx.Value) (any, error) {
	infoType, err := textArg(args, 0, "info_type")
	if err != nil {
		return nil, err
	}

	info, err := r.store.BusinessInfo(ctx)
	if err != nil {
		return nil, err
	}

	switch infoType {
	case "hours":
		return HoursInfo{
			WorkingHours:  info.WorkingHours,
			DetailedHours: info.Hours,
			Timezone:      info.Timezone,
		}, nil
	case "contact":
		return ContactInfo{Phone: info.Phone, Name: info.Name}, nil
	case "address":
		return AddressInfo{Address: info.Address, Name: info.Name}, nil
	case "all":
		return info, nil
	default:
		return InfoTypeError{Error: fmt.Sprintf("Unknown info type: %s", infoType)}, nil
	}
}
