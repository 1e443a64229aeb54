package entity

import (
	"errors"
)

var (
	ErrNotConnected    = errors.New("not connected to QuickBooks")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUpstream        = errors.New("quickbooks request failed")
)
