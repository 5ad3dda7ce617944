package repository

import (
	"context"
)

// SettingsRepository gives access to the shared settings document, where
// derived state such as the search history lives under sub-keys.
type SettingsRepository interface {
	// GetSearchHistory retrieves the stored search history, newest first.
	GetSearchHistory(ctx context.Context) ([]string, error)

	// SaveSearchHistory replaces the stored search history.
	SaveSearchHistory(ctx context.Context, terms []string) error

	// ClearSearchHistory removes the stored search history.
	ClearSearchHistory(ctx context.Context) error
}
