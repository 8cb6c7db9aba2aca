package models

import "time"

// Customer is a manually registered profile. Bills refer to customers by
// free-text name only.
type Customer struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Phone string     `json:"phone,omitempty"`
	DOB   *time.Time `json:"dob,omitempty"`
}

func (c Customer) GetID() string { return c.ID }

func (c Customer) WithID(id string) Customer {
	c.ID = id
	return c
}
