package protocol

const (
	// Argument/envelope validation.
	ErrBadRequest  = "E_BAD_REQUEST"
	ErrUnknownTool = "E_UNKNOWN_TOOL"

	// Per-call navigation/delivery failures. Both are ordinary results,
	// never panics: the step is charged and the caller may retry.
	ErrInvalidTransition = "E_INVALID_TRANSITION"
	ErrDeliveryMismatch  = "E_DELIVERY_MISMATCH"
)

var knownCodes = map[string]struct{}{
	ErrBadRequest:        {},
	ErrUnknownTool:       {},
	ErrInvalidTransition: {},
	ErrDeliveryMismatch:  {},
}

func IsKnownCode(code string) bool {
	if code == "" {
		return true
	}
	_, ok := knownCodes[code]
	return ok
}
