package tool

import (
	"fmt"

	contractx "github.com/tanpawarit/Chative-Booking-Receptionist/agent/contract"
)

func textArg(args []contractx.Value, idx int, name string) (string, error) {
	if idx >= len(args) {
		return "", fmt.Errorf("%s is required", name)
	}
	s, ok := args[idx].AsText()
	if !ok {
		return "", fmt.Errorf("%s must be text", name)
	}
	return s, nil
}

func intArg(args []contractx.Value, idx int, name string) (int, error) {
	if idx >= len(args) {
		return 0, fmt.Errorf("%s is required", name)
	}
	n, ok := args[idx].AsInt()
	if !ok {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return int(n), nil
}

func floatArg(args []contractx.Value, idx int, name string) (float64, error) {
	if idx >= len(args) {
		return 0, fmt.Errorf("%s is required", name)
	}
	f, ok := args[idx].AsFloat()
	if !ok {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return f, nil
}
