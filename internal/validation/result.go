package validation

// Result is the outcome of a single field check.
type Result struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// FormResult aggregates a whole form. Errors only has entries for failing
// fields.
type FormResult struct {
	IsValid bool              `json:"isValid"`
	Errors  map[string]string `json:"errors"`
}

func ok() Result {
	return Result{Valid: true}
}

func fail(msg string) Result {
	return Result{Message: msg}
}
