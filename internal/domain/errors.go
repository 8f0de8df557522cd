package domain

import "errors"

// Field-level invariant violations surfaced by entity constructors and
// mutators. The service layer wraps these into validation errors for the
// response envelope.
var (
	ErrFullNameEmpty = errors.New("Full name cannot be empty")
	ErrFullNameParts = errors.New("Full name must contain exactly two parts (first name and last name)")
	ErrFullNameChars = errors.New("Full name must contain only alphabets and spaces")

	ErrTitleEmpty      = errors.New("Job title cannot be empty")
	ErrTitleTooLong    = errors.New("Job title cannot exceed 100 characters")
	ErrDescTooShort    = errors.New("Job description must be at least 20 characters long")
	ErrDescTooLong     = errors.New("Job description cannot exceed 2000 characters")
	ErrResumeLinkEmpty = errors.New("Resume link cannot be empty")
	ErrResumeLinkURL   = errors.New("Resume link must be a valid URL")
	ErrCoverLetterLong = errors.New("Cover letter cannot exceed 200 characters")

	ErrProductNameEmpty = errors.New("Product name cannot be empty")
	ErrProductDescEmpty = errors.New("Product description cannot be empty")
	ErrPriceNegative    = errors.New("Price cannot be negative")
	ErrSKUNotAlnum      = errors.New("SKU must contain only alphanumeric characters")
	ErrStockNegative    = errors.New("Stock quantity cannot be negative")
	ErrInsufficientStock = errors.New("Insufficient stock")
)
