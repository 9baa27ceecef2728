package entity

import "errors"

var (
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrLeadNotFound         = errors.New("lead not found")
	ErrSubscriptionNotFound = errors.New("newsletter subscription not found")
)
