package completion

import "errors"

// any failure while calling the provider or reading its result.
// network, auth and malformed-response errors are not distinguished
type ProviderFailure struct {
	Cause error
}

func (f *ProviderFailure) Error() string {
	if f.Cause == nil {
		return "provider failure"
	}

	return f.Cause.Error()
}

func (f *ProviderFailure) Unwrap() error {
	return f.Cause
}

// the failure body reported to the caller
func (f *ProviderFailure) Response() CodeResponse {
	return CodeResponse{
		Completion: "",
		TokensUsed: 0,
		Model:      Model,
		Success:    false,
		Error:      f.Error(),
	}
}

// returns err as a ProviderFailure, wrapping it if needed
func AsProviderFailure(err error) *ProviderFailure {
	var failure *ProviderFailure
	if errors.As(err, &failure) {
		return failure
	}

	return &ProviderFailure{Cause: err}
}
