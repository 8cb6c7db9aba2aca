package models

import "time"

type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountAmount  DiscountType = "amount"
)

// ServiceItem is one line of a bill or booking. Price is the line total,
// already adjusted for quantity and variant.
type ServiceItem struct {
	ID          string `json:"id"`
	ServiceID   string `json:"serviceId,omitempty"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Quantity    int    `json:"quantity"`
	VariantName string `json:"variantName,omitempty"`
}

// Sale is the record shape shared by bills and bookings.
type Sale struct {
	ID            string        `json:"id"`
	CustomerName  string        `json:"customerName"`
	Date          time.Time     `json:"date"`
	Items         []ServiceItem `json:"items"`
	Total         int64         `json:"total"`
	DiscountValue float64       `json:"discountValue"`
	DiscountType  DiscountType  `json:"discountType"`
	Note          string        `json:"note,omitempty"`
}

// Bill is a finalized sale.
type Bill struct {
	Sale
}

func (b Bill) GetID() string { return b.ID }

func (b Bill) WithID(id string) Bill {
	b.ID = id
	return b
}

// Booking is a scheduled appointment; Date is the scheduled instant and
// CreatedAt never changes after the first save.
type Booking struct {
	Sale
	CreatedAt time.Time `json:"createdAt"`
}

func (b Booking) GetID() string { return b.ID }

func (b Booking) WithID(id string) Booking {
	b.ID = id
	return b
}

// ToBill converts a booking into a new, id-less bill dated at.
func (b Booking) ToBill(at time.Time) Bill {
	sale := b.Sale
	sale.ID = ""
	sale.Date = at
	sale.Items = append([]ServiceItem(nil), b.Items...)
	return Bill{Sale: sale}
}
