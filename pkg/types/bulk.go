// Result shapes for bulk link operations.
package types

// BulkCreateResult reports a one-source-many-targets bulk create.
// Created counts only newly inserted rows; duplicates are skipped, not errors.
type BulkCreateResult struct {
	// OperationID identifies this bulk run in logs and CLI output.
	OperationID string `json:"operation_id"`
	Created     int    `json:"created"`
}

// PhotoLinkResult reports a batched photo-link import with partial-failure
// accounting. Callers must inspect the counts: an error-free call does not
// imply full success.
type PhotoLinkResult struct {
	// OperationID identifies this bulk run in logs and CLI output.
	OperationID string `json:"operation_id"`

	// Successful counts photos now linked to the target, including ones
	// that were already linked before the call (idempotent re-runs).
	Successful int `json:"successful"`

	// Failed counts photos that could not be linked.
	Failed int `json:"failed"`

	// Errors holds one human-readable message per failed item, for display.
	Errors []string `json:"errors,omitempty"`

	// PhotoIDs lists the photo ids that were newly linked by this call, so
	// a caller can retry just the failed subset.
	PhotoIDs []int64 `json:"photo_ids,omitempty"`

	// Created counts only rows inserted by this call.
	Created int `json:"created"`
}
