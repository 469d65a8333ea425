package reservation

import "strings"

const (
	MinPeopleCount = 1
	MaxPeopleCount = 100
)

type PeopleCount struct {
	value int
}

func NewPeopleCount(v int) (PeopleCount, error) {
	if v < MinPeopleCount || v > MaxPeopleCount {
		return PeopleCount{}, ErrInvalidPeopleCount
	}
	return PeopleCount{value: v}, nil
}

func (p PeopleCount) Value() int { return p.value }

// VisitForm is what the customer presents at the restaurant.
// Values are kept verbatim because they must match the stored contact exactly.
type VisitForm struct {
	name        string
	phoneNumber string
}

func NewVisitForm(name, phoneNumber string) (VisitForm, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(phoneNumber) == "" {
		return VisitForm{}, ErrInvalidVisitForm
	}
	return VisitForm{name: name, phoneNumber: phoneNumber}, nil
}

func (f VisitForm) Name() string        { return f.name }
func (f VisitForm) PhoneNumber() string { return f.phoneNumber }
