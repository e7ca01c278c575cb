package domain

import "errors"

// Ошибки, которые возвращают use cases и адаптеры хранилищ.
// Нарушения валидации оборачиваются в ErrInvalidListing.
var (
	ErrListingNotFound   = errors.New("listing not found")
	ErrSlugTaken         = errors.New("slug already taken")
	ErrInvalidListing    = errors.New("invalid listing")
	ErrInvalidTransition = errors.New("invalid status transition")

	ErrInvalidType            = errors.New("type must be sale or rent")
	ErrInvalidStatus          = errors.New("unknown status")
	ErrInvalidPrice           = errors.New("price must be positive")
	ErrInvalidCurrency        = errors.New("unknown currency")
	ErrEmptyTitle             = errors.New("title is required")
	ErrUnknownCategory        = errors.New("unknown main category")
	ErrSubCategoryOutsideMain = errors.New("sub category is not allowed for main category")
	ErrLocationHierarchy      = errors.New("location hierarchy skips a level")
	ErrLandWithFeatures       = errors.New("land listing cannot carry interior, exterior or building features")
	ErrLandDetailsOnBuilt     = errors.New("land details are only allowed for land listings")
	ErrInvalidEnumValue       = errors.New("unknown enumerated value")
	ErrNegativeValue          = errors.New("numeric value cannot be negative")
	ErrInvalidCoordinates     = errors.New("coordinates out of range")
)
