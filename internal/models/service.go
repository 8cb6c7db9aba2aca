package models

type PriceType string

const (
	PriceFixed    PriceType = "fixed"
	PriceVariable PriceType = "variable"
)

type ServiceVariant struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// PredefinedService is a catalog entry used to fill bill items.
type PredefinedService struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Price         int64            `json:"price"`
	PriceType     PriceType        `json:"priceType"`
	Variants      []ServiceVariant `json:"variants,omitempty"`
	CategoryID    string           `json:"categoryId,omitempty"`
	AllowQuantity bool             `json:"allowQuantity"`
}

func (s PredefinedService) GetID() string { return s.ID }

func (s PredefinedService) WithID(id string) PredefinedService {
	s.ID = id
	return s
}

func (s PredefinedService) Variant(id string) (ServiceVariant, bool) {
	for _, v := range s.Variants {
		if v.ID == id {
			return v, true
		}
	}
	return ServiceVariant{}, false
}

type ServiceCategory struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}

func (c ServiceCategory) GetID() string { return c.ID }

func (c ServiceCategory) WithID(id string) ServiceCategory {
	c.ID = id
	return c
}
