package user

import "errors"

var (
	ErrCapabilityRequired = errors.New("capability required")
	ErrIdentityMissing    = errors.New("employee identity missing from token")
)
