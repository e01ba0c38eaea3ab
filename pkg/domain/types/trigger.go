package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// Trigger identifies which browser interaction caused a render request.
// The figure output does not depend on it; it is carried for access logs.
type Trigger string

const (
	TriggerUpload  Trigger = "upload"
	TriggerCompany Trigger = "company"
	TriggerInitial Trigger = "initial"
)

// IsValid checks if the trigger is one of the known interaction kinds
func (t Trigger) IsValid() bool {
	switch t {
	case TriggerUpload, TriggerCompany, TriggerInitial:
		return true
	default:
		return false
	}
}

// Validate checks if the trigger is valid
func (t Trigger) Validate() error {
	if !t.IsValid() {
		return goerr.New("unknown trigger", goerr.V("trigger", string(t)))
	}
	return nil
}

// String returns the string representation of the trigger
func (t Trigger) String() string {
	return string(t)
}
