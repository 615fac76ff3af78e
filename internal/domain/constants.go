package domain

import "time"

// File permission constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// ConfigFilePermissions is the permission for the config file (rw-------)
	ConfigFilePermissions = 0o600
)

// History constants
const (
	// DefaultHistoryLimit is the default number of run records to display
	DefaultHistoryLimit = 20
)

// Time formats
const (
	// TimestampFormat is the standard timestamp format for stored records
	TimestampFormat = time.RFC3339
)
