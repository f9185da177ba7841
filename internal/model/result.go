package model

// OperationResult reports the outcome of a write the catalogue may refuse.
// Callers must check Success; a failed result leaves storage untouched.
type OperationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// NotImplemented builds the failure result returned for writes on read-only entities.
func NotImplemented(operation, entity string) OperationResult {
	return OperationResult{
		Success: false,
		Message: operation + " operation not implemented for " + entity + " entities",
	}
}
