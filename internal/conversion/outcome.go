package conversion

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidNumber         = errors.New("invalid number")
	ErrUnsupportedConversion = errors.New("unsupported conversion")
	ErrInternal              = errors.New("internal conversion error")
)

// User-facing messages for failed outcomes.
const (
	InvalidNumberMessage = "Please enter a valid number."
	UnsupportedMessage   = "Conversion not supported."
)

// OutcomeKind tags the variant held by an Outcome.
type OutcomeKind int

const (
	OutcomeOK OutcomeKind = iota
	OutcomeInvalidNumber
	OutcomeUnsupportedConversion
	OutcomeInternalError
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeOK:
		return "ok"
	case OutcomeInvalidNumber:
		return "invalid_number"
	case OutcomeUnsupportedConversion:
		return "unsupported_conversion"
	case OutcomeInternalError:
		return "internal_error"
	default:
		return "unknown"
	}
}

// Outcome is the result of a conversion: either a formatted value or a
// classified failure. Callers must check Kind (or OK) before using Value.
type Outcome struct {
	Kind    OutcomeKind
	Value   float64
	Unit    string
	Display string
	cause   error
}

// OK reports whether the conversion produced a value.
func (o Outcome) OK() bool {
	return o.Kind == OutcomeOK
}

// Message returns the text a user interface should show for this outcome.
func (o Outcome) Message() string {
	switch o.Kind {
	case OutcomeOK:
		return o.Display
	case OutcomeInvalidNumber:
		return InvalidNumberMessage
	case OutcomeUnsupportedConversion:
		return UnsupportedMessage
	default:
		return o.Err().Error()
	}
}

// Err returns nil for a successful outcome, otherwise an error wrapping one of
// ErrInvalidNumber, ErrUnsupportedConversion or ErrInternal.
func (o Outcome) Err() error {
	switch o.Kind {
	case OutcomeOK:
		return nil
	case OutcomeInvalidNumber:
		return ErrInvalidNumber
	case OutcomeUnsupportedConversion:
		return ErrUnsupportedConversion
	default:
		if o.cause == nil {
			return ErrInternal
		}
		return fmt.Errorf("%w: %v", ErrInternal, o.cause)
	}
}

func succeeded(value float64, unit string) Outcome {
	return Outcome{Kind: OutcomeOK, Value: value, Unit: unit, Display: Format(value, unit)}
}

func invalidNumber() Outcome {
	return Outcome{Kind: OutcomeInvalidNumber}
}

func unsupported() Outcome {
	return Outcome{Kind: OutcomeUnsupportedConversion}
}

func internalError(cause error) Outcome {
	return Outcome{Kind: OutcomeInternalError, cause: cause}
}
