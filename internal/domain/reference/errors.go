package reference

import "errors"

var (
	ErrTaxonomyUnavailable = errors.New("category taxonomy unavailable")
)
