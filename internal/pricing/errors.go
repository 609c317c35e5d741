package pricing

import "fmt"

// ValidationError reports malformed input to a calculation: a negative
// quantity, formula coefficients that do not sum to one, a zero base
// index. It is always surfaced to the caller, never swallowed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

func validationf(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// PricingError reports a price that could not be resolved: a material
// with no effective price for the requested date and a piece with no
// manual price override. The caller decides whether to block the
// quotation or flag the line for manual pricing.
type PricingError struct {
	Piece    string
	Material string
	Reason   string
}

func (e *PricingError) Error() string {
	if e.Material != "" {
		return fmt.Sprintf("pricing: piece %s, material %s: %s", e.Piece, e.Material, e.Reason)
	}
	return fmt.Sprintf("pricing: piece %s: %s", e.Piece, e.Reason)
}

// ConfigurationError reports structurally invalid reference data, such
// as a zero-capacity truck or a tariff table that covers no bracket for
// the requested distance.
type ConfigurationError struct {
	Subject string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: %s: %s", e.Subject, e.Reason)
}

func configurationf(subject, format string, args ...any) error {
	return &ConfigurationError{Subject: subject, Reason: fmt.Sprintf(format, args...)}
}
