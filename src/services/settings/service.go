package settings

import (
	"context"

	"Backend-EvalApp/src/database"
	"Backend-EvalApp/src/models"
	"Backend-EvalApp/src/storage"
)

var store storage.RecordStore

// Init wires the record store. Must be called before any other function.
func Init(s storage.RecordStore) {
	store = s
}

// Defaults returns the hardcoded settings used until an admin saves their
// own. The gateway key is intentionally empty: it must be configured
// before auto-reports can be delivered.
func Defaults() models.AppSettings {
	return models.AppSettings{
		WaAPIKey:  "",
		WaBaseURL: "https://api.fonnte.com/send",
		WaFooter:  "Terima kasih telah memberikan yang terbaik!",
	}
}

// GetSettings returns the singleton settings record, falling back to the
// hardcoded defaults when nothing has been saved yet.
func GetSettings(ctx context.Context) (models.AppSettings, error) {
	var docs []models.AppSettings
	if err := store.Read(ctx, database.SettingsKey, &docs); err != nil {
		return models.AppSettings{}, err
	}
	if len(docs) == 0 {
		return Defaults(), nil
	}
	return docs[0], nil
}

// SaveSettings overwrites the singleton wholesale.
func SaveSettings(ctx context.Context, s models.AppSettings) error {
	return store.WriteAll(ctx, database.SettingsKey, []models.AppSettings{s})
}
