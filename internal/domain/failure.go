package domain

// ExampleFailure represents a failed example block
type ExampleFailure struct {
	Module   string `json:"module"`
	File     string `json:"file"`
	Line     int    `json:"line"`
	Source   string `json:"source"`
	Want     string `json:"want"`
	Got      string `json:"got"`
	Message  string `json:"message,omitempty"`  // Set when the interpreter itself failed
	Resolved bool   `json:"resolved,omitempty"` // Track if the failure is marked as resolved
}
