package contacts

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

// GetContacts returns the full contact book.
func GetContacts(ctx context.Context) ([]models.Contact, error) {
	var cs []models.Contact
	if err := store.Read(ctx, database.ContactsKey, &cs); err != nil {
		return nil, err
	}
	return cs, nil
}

// SaveContact upserts one contact by id.
func SaveContact(ctx context.Context, contact models.Contact) error {
	cs, err := GetContacts(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i := range cs {
		if cs[i].ID == contact.ID {
			idx = i
			break
		}
	}
	if idx >= 0 {
		cs[idx] = contact
	} else {
		cs = append(cs, contact)
	}

	return store.WriteAll(ctx, database.ContactsKey, cs)
}

// DeleteContact removes one contact.
func DeleteContact(ctx context.Context, id string) error {
	cs, err := GetContacts(ctx)
	if err != nil {
		return err
	}

	kept := make([]models.Contact, 0, len(cs))
	for _, c := range cs {
		if c.ID != id {
			kept = append(kept, c)
		}
	}

	return store.WriteAll(ctx, database.ContactsKey, kept)
}
