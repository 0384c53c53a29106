package domain

// ModuleResult represents the outcome of executing one module's examples
type ModuleResult struct {
	Name      string `json:"name"`      // Dotted module name
	Attempted int    `json:"attempted"` // Example blocks executed
	Failed    int    `json:"failed"`    // Example blocks that did not match
}

// ReportMeta contains metadata about a harness run
type ReportMeta struct {
	TotalModules      int      `json:"total_modules"`
	FailedModules     int      `json:"failed_modules"`
	AttemptedExamples int      `json:"attempted_examples"`
	PassedExamples    int      `json:"passed_examples"`
	FailedExamples    int      `json:"failed_examples"`
	Warnings          []string `json:"warnings,omitempty"`
	Duration          string   `json:"duration"`
	DurationSeconds   float64  `json:"duration_seconds"`
	Timestamp         string   `json:"timestamp"`
}

// ReportOutput is the complete persisted structure for one harness run
type ReportOutput struct {
	Meta          ReportMeta     `json:"meta"`
	FailedModules []ModuleResult `json:"failed_modules,omitempty"`
	Details       []ExampleFailure `json:"details"`
}
