package kernel

import (
	"errors"
	"strings"

	"laundry/internal/pkg/errs"
)

// Contact is the customer's reachable identity on campus: who they are and
// which hostel room the laundry belongs to.
type Contact struct {
	fullName   string
	phone      string
	hostelName string
	roomNumber string
}

// NewContact requires every field to be non-blank. All missing fields are
// reported together.
func NewContact(fullName, phone, hostelName, roomNumber string) (Contact, error) {
	c := Contact{
		fullName:   strings.TrimSpace(fullName),
		phone:      strings.TrimSpace(phone),
		hostelName: strings.TrimSpace(hostelName),
		roomNumber: strings.TrimSpace(roomNumber),
	}
	if err := c.Validate(); err != nil {
		return Contact{}, err
	}
	return c, nil
}

// Validate reports every blank field.
func (c Contact) Validate() error {
	var errList []error
	if c.fullName == "" {
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	}
	if c.phone == "" {
		errList = append(errList, errs.NewValueIsRequiredError("phone"))
	}
	if c.hostelName == "" {
		errList = append(errList, errs.NewValueIsRequiredError("hostel name"))
	}
	if c.roomNumber == "" {
		errList = append(errList, errs.NewValueIsRequiredError("room number"))
	}
	return errors.Join(errList...)
}

func (c Contact) FullName() string { return c.fullName }
func (c Contact) Phone() string { return c.phone }
func (c Contact) HostelName() string { return c.hostelName }
func (c Contact) RoomNumber() string { return c.roomNumber }
