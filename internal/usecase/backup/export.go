package backup

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/BruksfildServices01/salon-pos/internal/audit"
)

// Export snapshots every collection and the settings.
func (b *Backup) Export() Document {
	return Document{
		Version:    Version,
		ExportedAt: b.Now(),
		Bills:      b.Bills.List(),
		Services:   b.Services.List(),
		Categories: b.Categories.List(),
		Settings:   b.Settings.Get(),
		Bookings:   b.Bookings.List(),
		Customers:  b.Customers.List(),
	}
}

// Archive uploads a fresh export and returns its location.
func (b *Backup) Archive(ctx context.Context) (string, error) {
	if b.Archiver == nil {
		return "", ErrArchiveDisabled
	}

	doc := b.Export()
	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode backup: %w", err)
	}

	location, err := b.Archiver.Put(ctx, b.FileName(doc.ExportedAt), body)
	if err != nil {
		return "", fmt.Errorf("archive backup: %w", err)
	}

	b.Audit.Dispatch(audit.Event{
		Action:   "backup_archived",
		Entity:   "backup",
		Metadata: map[string]string{"location": location},
	})
	return location, nil
}
