package kv

import (
	"context"
	"encoding/json"

	domainerrors "pricefield/internal/domain/errors"
	"pricefield/internal/domain/repository"
)

// Sub-keys inside the shared settings document.
const searchHistorySubKey = "search_history"

// settingsRepository implements the repository.SettingsRepository
// interface. Derived settings share one storage key and are nested under
// sub-keys inside a single JSON object.
type settingsRepository struct {
	store *Store
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(store *Store) repository.SettingsRepository {
	return &settingsRepository{store: store}
}

// GetSearchHistory retrieves the stored search history, newest first.
func (repo *settingsRepository) GetSearchHistory(ctx context.Context) ([]string, error) {
	settings := repo.loadSettings(ctx)

	raw, ok := settings[searchHistorySubKey]
	if !ok {
		return []string{}, nil
	}

	var terms []string
	if err := json.Unmarshal(raw, &terms); err != nil {
		// Corrupt sub-document degrades to empty, same as a corrupt key.
		return []string{}, nil
	}

	return terms, nil
}

// SaveSearchHistory replaces the stored search history.
func (repo *settingsRepository) SaveSearchHistory(ctx context.Context, terms []string) error {
	settings := repo.loadSettings(ctx)

	raw, err := json.Marshal(terms)
	if err != nil {
		return domainerrors.NewStorageWriteError(err, "failed to serialize search history")
	}
	settings[searchHistorySubKey] = raw

	if err := repo.store.Set(ctx, settingsKey, settings); err != nil {
		return domainerrors.NewStorageWriteError(err, "failed to save search history")
	}

	return nil
}

// ClearSearchHistory removes the stored search history.
func (repo *settingsRepository) ClearSearchHistory(ctx context.Context) error {
	settings := repo.loadSettings(ctx)
	if _, ok := settings[searchHistorySubKey]; !ok {
		return nil
	}
	delete(settings, searchHistorySubKey)

	if err := repo.store.Set(ctx, settingsKey, settings); err != nil {
		return domainerrors.NewStorageWriteError(err, "failed to clear search history")
	}

	return nil
}

func (repo *settingsRepository) loadSettings(ctx context.Context) map[string]json.RawMessage {
	settings := make(map[string]json.RawMessage)
	repo.store.Get(ctx, settingsKey, &settings)

	return settings
}
