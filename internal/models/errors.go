package models

import "fmt"

// ErrorType represents different categories of errors
type ErrorType int

const (
	ErrInvalidConfig ErrorType = iota
	ErrBuild
	ErrFetch
	ErrExtract
	ErrFileOp
	ErrAssemble
	ErrArchive
	ErrPlaceholder
)

// String returns the string representation of ErrorType
func (e ErrorType) String() string {
	switch e {
	case ErrInvalidConfig:
		return "InvalidConfig"
	case ErrBuild:
		return "Build"
	case ErrFetch:
		return "Fetch"
	case ErrExtract:
		return "Extract"
	case ErrFileOp:
		return "FileOp"
	case ErrAssemble:
		return "Assemble"
	case ErrArchive:
		return "Archive"
	case ErrPlaceholder:
		return "Placeholder"
	default:
		return "Unknown"
	}
}

// ExportError represents an error during package export
type ExportError struct {
	Type ErrorType
	Path string
	Err  error
}

// Error implements the error interface
func (e *ExportError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Path, e.Err)
	}
	return fmt.Sprintf("[%s] %v", e.Type, e.Err)
}

// Unwrap returns the wrapped error
func (e *ExportError) Unwrap() error {
	return e.Err
}

// PlaceholderError reports unresolved template placeholders after the
// verification pass. Count doubles as the process exit code so every
// occurrence stays visible to automation.
type PlaceholderError struct {
	Count int
}

// Error implements the error interface
func (e *PlaceholderError) Error() string {
	return fmt.Sprintf("%d unresolved placeholder(s) remain in the target tree", e.Count)
}
