package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Keys of the persisted documents.
const (
	KeyBills       = "bills"
	KeyServices    = "services"
	KeyCategories  = "categories"
	KeyBookings    = "bookings"
	KeyCustomers   = "customers"
	KeySettings    = "shopSettings"
	KeyNotifiedIDs = "notifiedBookingIds"
)

var ErrUnknownDriver = errors.New("unknown store driver")

// Store is a synchronous key-value store of JSON documents. There are no
// transactions; each Set replaces the whole value.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// GetJSON decodes the value under key into out. found is false when the key
// has never been written.
func GetJSON(ctx context.Context, s Store, key string, out any) (bool, error) {
	raw, found, err := s.Get(ctx, key)
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func SetJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(ctx, key, raw)
}
