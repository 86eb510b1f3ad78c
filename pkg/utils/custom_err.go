package utils

import "errors"

var (
	ErrCountryNotFound     = errors.New("country not found")
	ErrDestinationNotFound = errors.New("destination not found")
	ErrHotelNotFound       = errors.New("hotel not found")
	ErrAttractionNotFound  = errors.New("attraction not found")
	ErrTripNotFound        = errors.New("trip not found")
	ErrBudgetNotFound      = errors.New("budget allocation not found")
	ErrTourGuideNotFound   = errors.New("tour guide not found")
	ErrAccountNotFound     = errors.New("account not found")

	ErrDestinationRequired = errors.New("destination id is required")
	ErrStartDateRequired   = errors.New("start date is required")
	ErrBudgetRequired      = errors.New("budget is required")

	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
)
