package dto

// ImportReport summarizes one VVAIS report import into a fond
type ImportReport struct {
	BatchID  string          `json:"batchId"`
	FondCode string          `json:"fondCode"`
	Total    int             `json:"total"`
	Created  int             `json:"created"`
	Failures []ImportFailure `json:"failures,omitempty"`
}

// ImportFailure describes a record that was not imported.
// Fields is set when the record failed field validation.
type ImportFailure struct {
	Index  int               `json:"index"`
	Number interface{}       `json:"number,omitempty"`
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Failed returns the number of records that were not imported
func (r ImportReport) Failed() int {
	return len(r.Failures)
}
