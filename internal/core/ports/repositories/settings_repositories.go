package repositories

import "context"

// SettingsReader defines read operations for persisted key-value settings
type SettingsReader interface {
	// GetSetting returns apperrors.ErrNotFound when the key was never written
	// and apperrors.ErrStorageUnavailable when the storage cannot be reached.
	GetSetting(ctx context.Context, key string) (string, error)
}

// SettingsWriter defines write operations for persisted key-value settings
type SettingsWriter interface {
	// SetSetting overwrites the value stored under key.
	SetSetting(ctx context.Context, key, value string) error
}

// SettingsStoreFacade combines settings read and write access
type SettingsStoreFacade interface {
	SettingsReader
	SettingsWriter
}
