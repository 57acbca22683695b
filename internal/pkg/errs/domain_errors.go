package errs

import "errors"

// Sentinel errors shared by the usecase and handler layers
var (
	// Input errors
	ErrValidation = errors.New("validation failed")

	// Eligibility errors
	ErrNotEligible = errors.New("subscription does not cover the borrowing period")

	// Subscription check errors
	ErrDispatchFailed = errors.New("subscription check dispatch failed")
	ErrCheckTimedOut  = errors.New("subscription check timed out")

	// Borrowing errors
	ErrBorrowingNotFound = errors.New("borrowing not found")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrCipherFailed            = errors.New("field cipher failed")
)
