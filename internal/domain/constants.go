package domain

// Default configuration values
const (
	DefaultLeadTimeDays = 1
)

// Business validation constants
const (
	MinLeadTimeDays = 0
	MaxLeadTimeDays = 30

	MaxAmenityNameLength = 100
	MaxIconLength        = 16
	MinAmenityCapacity   = 1
	MaxAmenityCapacity   = 1000

	MaxAnnouncementTitleLength   = 200
	MaxAnnouncementContentLength = 2000

	MaxResidentNameLength = 100
	MaxUnitLength         = 20
	MaxEmailLength        = 254
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
