package storage

import (
	"context"
	"reflect"

	"Backend-EvalApp/src/database"

	"go.mongodb.org/mongo-driver/bson"
)

// MongoStore maps each collection key onto a MongoDB collection.
// WriteAll is a delete-all plus insert-many, which keeps the
// full-overwrite contract of RecordStore.
type MongoStore struct{}

func NewMongoStore() *MongoStore {
	return &MongoStore{}
}

func (s *MongoStore) Read(ctx context.Context, key string, out interface{}) error {
	cursor, err := database.GetCollection(key).Find(ctx, bson.M{})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	return cursor.All(ctx, out)
}

func (s *MongoStore) WriteAll(ctx context.Context, key string, docs interface{}) error {
	collection := database.GetCollection(key)

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}

	v := reflect.ValueOf(docs)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Len() == 0 {
		return nil
	}

	items := make([]interface{}, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		items = append(items, v.Index(i).Interface())
	}

	_, err := collection.InsertMany(ctx, items)
	return err
}
