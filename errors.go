package slugger

import "errors"

// Configuration errors. They are always joined with ErrInvalidConfig, so
// errors.Is(err, ErrInvalidConfig) identifies the whole category.
var (
	ErrInvalidConfig      = errors.New("slugger: invalid configuration")
	ErrMissingSource      = errors.New("slugger: source field is required")
	ErrMissingColumn      = errors.New("slugger: slug column is required")
	ErrMissingParent      = errors.New("slugger: parent reference is required for parent uniqueness")
	ErrMissingParentValue = errors.New("slugger: record has no value in parent column")
	ErrInvalidUnique      = errors.New("slugger: unknown uniqueness mode")
	ErrFieldNotFound      = errors.New("slugger: record field not found")
	ErrNilRecord          = errors.New("slugger: record is nil")
	ErrNilCounter         = errors.New("slugger: uniqueness query is not configured")
)

// ErrQueryFailed wraps failures of the uniqueness query.
var ErrQueryFailed = errors.New("slugger: uniqueness query failed")

// configError joins the category sentinel with the specific cause.
func configError(errs ...error) error {
	return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
}
