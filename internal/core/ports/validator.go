package ports

import "go.trai.ch/tsconf/internal/core/domain"

// Validator is the semantic config validator collaborator. It turns raw JSON
// into a normalized option set, or a list of diagnostics when it cannot.
//
//go:generate mockgen -source=validator.go -destination=mocks/mock_validator.go -package=mocks
type Validator interface {
	// Validate checks the raw config text semantically. baseDir is the
	// directory used to resolve relative compiler options (e.g. path-mapped
	// module roots). Diagnostics describe semantic failures; the error return
	// is reserved for infrastructure faults.
	Validate(raw []byte, baseDir string) (domain.Options, []domain.Diagnostic, error)
}
