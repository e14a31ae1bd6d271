package errors

// body shape for every error response: {"detail": ...}
type DetailResponse struct {
	Detail any `json:"detail"`
}

// one entry of a 422 detail list
type ValidationIssue struct {
	Loc  []any  `json:"loc"`  // path into the request, starting at "body"; list indexes are ints
	Msg  string `json:"msg"`  // human-readable reason
	Type string `json:"type"` // machine-readable reason (e.g. "missing", "json_invalid")
}
