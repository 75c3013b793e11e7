// Package shiftsync uploads scraped shift records into Grist tables.
package shiftsync

import (
	"time"

	"go.uber.org/zap"
)

// DefaultDoc is the document used when none is given.
const DefaultDoc = "ABS_Scraper_Data"

// ScrapedAtColumn is stamped on every uploaded record that lacks it.
const ScrapedAtColumn = "scraped_at"

// TimestampLayout formats ScrapedAtColumn values (local time, microseconds).
const TimestampLayout = "2006-01-02T15:04:05.000000"

// Options configures an upload.
type Options struct {
	// Doc is the Grist document name. Empty means DefaultDoc.
	Doc string
	// Table is the destination table id. Required.
	Table string
	// WorkspaceID selects the workspace. Zero uses the client's default.
	WorkspaceID int
	// Upsert updates rows matching KeyColumns instead of always adding.
	Upsert bool
	// KeyColumns are the match columns for Upsert.
	KeyColumns []string
	// Now returns the upload timestamp. Nil means time.Now.
	Now func() time.Time
	// Logger receives progress messages. Nil means no logging.
	Logger *zap.Logger
}

func (o Options) doc() string {
	if o.Doc == "" {
		return DefaultDoc
	}
	return o.Doc
}

func (o Options) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
