// Package doctor inspects the local machine and reports on the health of
// the conda installation, shell integration, and environment catalog.
package doctor

// Status classifies the outcome of a single check.
type Status int

const (
	StatusOK Status = iota
	StatusWarn
	StatusFail
)

// Result is one line of doctor output.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}
