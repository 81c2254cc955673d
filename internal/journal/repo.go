package journal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrEntryNotFound is returned when an entry id does not resolve.
var ErrEntryNotFound = errors.New("entry not found")

// Repo persists entries in the "entries" collection.
type Repo struct {
	coll *mongo.Collection
}

func NewRepo(db *mongo.Database) *Repo {
	return &Repo{coll: db.Collection("entries")}
}

// EnsureIndexes creates the indexes the read paths rely on.
func (r *Repo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "date", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "category", Value: 1}},
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("create indexes: %w", err)
	}
	return nil
}

// Insert creates a new entry, assigning its id.
func (r *Repo) Insert(ctx context.Context, e *Entry) error {
	e.ID = primitive.NewObjectID()
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt

	_, err := r.coll.InsertOne(ctx, e)
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}

// Update replaces the mutable fields of an existing entry and returns the
// updated record.
func (r *Repo) Update(ctx context.Context, id primitive.ObjectID, d Draft) (*Entry, error) {
	update := bson.M{"$set": bson.M{
		"date":       d.Date,
		"category":   d.Category,
		"text":       d.Text,
		"updated_at": time.Now(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var entry Entry
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update entry %s: %w", id.Hex(), err)
	}
	return &entry, nil
}

// Delete removes an entry by id.
func (r *Repo) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// FindByID retrieves an entry by its id.
func (r *Repo) FindByID(ctx context.Context, id primitive.ObjectID) (*Entry, error) {
	var entry Entry
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find entry %s: %w", id.Hex(), err)
	}
	return &entry, nil
}

// ListAll retrieves every entry, oldest date first.
func (r *Repo) ListAll(ctx context.Context) ([]Entry, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "date", Value: 1},
		{Key: "created_at", Value: 1},
	})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []Entry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode entries: %w", err)
	}
	return entries, nil
}
