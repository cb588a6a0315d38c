package models

import "time"

// AuditFields embeds common bookkeeping columns.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
