package backup

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-pos/internal/audit"
	"github.com/BruksfildServices01/salon-pos/internal/domain"
	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/models"
)

const Version = 1

var (
	ErrInvalidBackup        = httperr.ErrBusiness("invalid_backup")
	ErrConfirmationRequired = httperr.ErrBusiness("confirmation_required")
	ErrArchiveDisabled      = httperr.ErrBusiness("archive_not_configured")
)

// Document is the export file. Bills and services are always present on
// import; the other sections are optional.
type Document struct {
	Version    int                        `json:"version"`
	ExportedAt time.Time                  `json:"exportedAt"`
	Bills      []models.Bill              `json:"bills"`
	Services   []models.PredefinedService `json:"services"`
	Categories []models.ServiceCategory   `json:"categories"`
	Settings   models.ShopSettings        `json:"settings"`
	Bookings   []models.Booking           `json:"bookings"`
	Customers  []models.Customer          `json:"customers"`
}

type Settings interface {
	Get() models.ShopSettings
	Save(ctx context.Context, s models.ShopSettings) models.ShopSettings
	Reload(ctx context.Context)
}

// Resetter re-derives the due queue after a restore.
type Resetter interface {
	Reset(ctx context.Context)
}

// Archiver stores an export under key and returns where it went.
type Archiver interface {
	Put(ctx context.Context, key string, body []byte) (string, error)
}

type Deps struct {
	Bills      domain.Repository[models.Bill]
	Services   domain.Repository[models.PredefinedService]
	Categories domain.Repository[models.ServiceCategory]
	Bookings   domain.Repository[models.Booking]
	Customers  domain.Repository[models.Customer]
	Settings   Settings
	Engine     Resetter
	Archiver   Archiver
	Audit      *audit.Dispatcher
	Location   *time.Location
	Now        func() time.Time
}

type Backup struct {
	Deps
}

func New(d Deps) *Backup {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Location == nil {
		d.Location = time.UTC
	}
	return &Backup{Deps: d}
}

// FileName is salon-backup-YYYYMMDD-HHMMSS.json in the shop time zone.
func (b *Backup) FileName(at time.Time) string {
	return "salon-backup-" + at.In(b.Location).Format("20060102-150405") + ".json"
}
