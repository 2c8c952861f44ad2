package models

// Status classifies a category against the contract and the model.
type Status string

const (
	// StatusPresent means the category is in the contract and the model has
	// elements of it.
	StatusPresent Status = "present"

	// StatusMissingFromModel means the contract requires the category but the
	// model has no elements of it.
	StatusMissingFromModel Status = "missing_from_model"

	// StatusMissingFromContract means the model contains the category but the
	// contract does not list it.
	StatusMissingFromContract Status = "missing_from_contract"

	// StatusNotApplicable means the category is neither in the contract nor
	// in the model.
	StatusNotApplicable Status = "not_applicable"
)

// Classify maps the two membership checks onto a Status.
func Classify(inContract, inModel bool) Status {
	switch {
	case inContract && inModel:
		return StatusPresent
	case inContract && !inModel:
		return StatusMissingFromModel
	case !inContract && inModel:
		return StatusMissingFromContract
	default:
		return StatusNotApplicable
	}
}

// Symbol returns the check or cross mark shown in status columns.
func (s Status) Symbol() string {
	if s == StatusPresent {
		return "✓"
	}
	return "✗"
}

// Description returns the status wording used in the category summary.
func (s Status) Description() string {
	switch s {
	case StatusPresent:
		return "Present in contract and model"
	case StatusMissingFromModel:
		return "In contract but not in model"
	case StatusMissingFromContract:
		return "Missing in the contract"
	default:
		return "Not in contract, not in model"
	}
}

// RGB returns the display color for the status symbol.
func (s Status) RGB() (r, g, b int) {
	switch s {
	case StatusPresent:
		return 0, 128, 0 // green
	case StatusMissingFromModel:
		return 255, 165, 0 // orange
	case StatusMissingFromContract:
		return 255, 0, 0 // red
	default:
		return 128, 128, 128 // gray
	}
}
