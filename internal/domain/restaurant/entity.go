package restaurant

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrInvalidName        = errors.New("restaurant name must be between 1 and 100 characters")
	ErrInvalidLocation    = errors.New("restaurant location must be between 1 and 255 characters")
	ErrDescriptionTooLong = errors.New("restaurant description exceeds maximum length")
	ErrInvalidPhoneNumber = errors.New("invalid restaurant phone number")
	ErrInvalidManager     = errors.New("restaurant requires an owning manager")
)

const (
	MaxNameLength        = 100
	MaxLocationLength    = 255
	MaxDescriptionLength = 2000
	MaxPhoneNumberLength = 20
)

type Restaurant struct {
	id          int64
	managerID   int64
	name        string
	location    string
	description string
	phoneNumber string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewRestaurant(managerID int64, name, location, description, phoneNumber string, now time.Time) (*Restaurant, error) {
	if managerID <= 0 {
		return nil, ErrInvalidManager
	}

	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxNameLength {
		return nil, ErrInvalidName
	}
	location = strings.TrimSpace(location)
	if location == "" || utf8.RuneCountInString(location) > MaxLocationLength {
		return nil, ErrInvalidLocation
	}
	description = strings.TrimSpace(description)
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}
	phoneNumber = strings.TrimSpace(phoneNumber)
	if len(phoneNumber) > MaxPhoneNumberLength {
		return nil, ErrInvalidPhoneNumber
	}

	return &Restaurant{
		managerID:   managerID,
		name:        name,
		location:    location,
		description: description,
		phoneNumber: phoneNumber,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func Reconstruct(id, managerID int64, name, location, description, phoneNumber string, createdAt, updatedAt time.Time) *Restaurant {
	return &Restaurant{
		id:          id,
		managerID:   managerID,
		name:        name,
		location:    location,
		description: description,
		phoneNumber: phoneNumber,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// IsManagedBy is the ownership check for every manager operation on the restaurant.
func (r *Restaurant) IsManagedBy(managerID int64) bool {
	return r.managerID == managerID
}

func (r *Restaurant) ID() int64            { return r.id }
func (r *Restaurant) ManagerID() int64     { return r.managerID }
func (r *Restaurant) Name() string         { return r.name }
func (r *Restaurant) Location() string     { return r.location }
func (r *Restaurant) Description() string  { return r.description }
func (r *Restaurant) PhoneNumber() string  { return r.phoneNumber }
func (r *Restaurant) CreatedAt() time.Time { return r.createdAt }
func (r *Restaurant) UpdatedAt() time.Time { return r.updatedAt }
