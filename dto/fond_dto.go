package dto

// CreateFondRequest carries the declared fields of a new fond. The owning
// institution is passed separately.
type CreateFondRequest struct {
	FondCode         string `json:"fondCode"`
	ArchAbbreviation string `json:"archAbbreviation"`
	ArchTitle        string `json:"archTitle"`
	FondNumber       int    `json:"fondNumber"`
	FondTitle        string `json:"fondTitle"`
	Subfond          bool   `json:"subfond"`
}
