package elongation

import (
	"errors"
	"fmt"
)

// Reason identifies why an input pair was rejected
type Reason int

const (
	MissingMaterial Reason = iota + 1
	MissingForce
	InvalidForceFormat
	NonPositiveForce
	UnknownMaterial
	ForceExceedsMaximum
)

func (r Reason) String() string {
	switch r {
	case MissingMaterial:
		return "MissingMaterial"
	case MissingForce:
		return "MissingForce"
	case InvalidForceFormat:
		return "InvalidForceFormat"
	case NonPositiveForce:
		return "NonPositiveForce"
	case UnknownMaterial:
		return "UnknownMaterial"
	case ForceExceedsMaximum:
		return "ForceExceedsMaximum"
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

// ValidationError reports a rejected (material, force) input.
// Limit is only set for ForceExceedsMaximum.
type ValidationError struct {
	Reason Reason
	Limit  float64 // kgf
}

// Sentinels for errors.Is. Two ValidationErrors match when their reasons match.
var (
	ErrMissingMaterial     = &ValidationError{Reason: MissingMaterial}
	ErrMissingForce        = &ValidationError{Reason: MissingForce}
	ErrInvalidForceFormat  = &ValidationError{Reason: InvalidForceFormat}
	ErrNonPositiveForce    = &ValidationError{Reason: NonPositiveForce}
	ErrUnknownMaterial     = &ValidationError{Reason: UnknownMaterial}
	ErrForceExceedsMaximum = &ValidationError{Reason: ForceExceedsMaximum}
)

func (e *ValidationError) Error() string {
	return e.message(func(v float64) string {
		return fmt.Sprintf("%.2f", v)
	})
}

// Is matches any ValidationError with the same reason
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return t.Reason == e.Reason
}

func (e *ValidationError) message(formatForce func(float64) string) string {
	switch e.Reason {
	case MissingMaterial:
		return "select a material type"
	case MissingForce, InvalidForceFormat:
		return "enter a valid numeric tensioning force"
	case NonPositiveForce:
		return "force must be a positive value"
	case UnknownMaterial:
		return "selected material is invalid"
	case ForceExceedsMaximum:
		return fmt.Sprintf("force exceeds the maximum permitted of %s kgf for this material", formatForce(e.Limit))
	}
	return "invalid input"
}

// Message renders err for the end user. When err is a ValidationError the
// force limit is written with formatForce; any other error is returned as is.
func Message(err error, formatForce func(float64) string) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.message(formatForce)
	}
	return err.Error()
}
