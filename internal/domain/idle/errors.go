package idle

import "errors"

var (
	ErrItemNotFound       = errors.New("idle item not found")
	ErrUnknownCategory    = errors.New("unknown reason category")
	ErrInvalidSubcategory = errors.New("subcategory does not belong to category")
	ErrItemNotEditable    = errors.New("item no longer accepts reason submissions")
	ErrTicketAttached     = errors.New("ticket already attached to item")
)
