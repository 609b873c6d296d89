package llm

// Extraction is the strict payload the model must answer with: a short
// natural-language reply plus an ISO8601 appointment candidate. JSON nulls
// decode to empty strings, meaning "absent".
type Extraction struct {
	Reply string `json:"reply"`
	ISO   string `json:"iso"`
}

// Empty reports whether the model produced nothing usable.
func (e *Extraction) Empty() bool {
	return e == nil || (e.Reply == "" && e.ISO == "")
}
