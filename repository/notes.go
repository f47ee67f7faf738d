package repository

import (
	"context"
	"errors"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotesRepo struct {
	MongoCollection *mongo.Collection
}

func GetNotesRepo(client *mongo.Client) *NotesRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "notes_app")
	collectionName := utils.GetEnvAsString("NOTES_COLLECTION", "notes")
	return &NotesRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// CreateNote inserts a new note
func (r *NotesRepo) CreateNote(ctx context.Context, note *model.Note) error {
	timer := utils.TrackDBOperation("insert", "notes")
	defer timer.ObserveDuration()

	if note.UserID == "" {
		utils.TrackError("database", "invalid_note_data")
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, note)
	return err
}

// GetNote retrieves a note owned by userID, or nil when no owned note
// with that ID exists.
func (r *NotesRepo) GetNote(ctx context.Context, noteID, userID string) (*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	var note model.Note
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"_id": noteID, "user_id": userID}).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "note_lookup_error")
		return nil, err
	}
	return &note, nil
}

// GetUserNotes retrieves all notes owned by userID, pinned notes first.
// The secondary sort on creation time keeps order stable within groups.
func (r *NotesRepo) GetUserNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{
		{Key: "is_pinned", Value: -1},
		{Key: "created_on", Value: 1},
		{Key: "_id", Value: 1},
	})

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	notes := []*model.Note{}
	if err = cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// UpdateNote applies the given field set to a note owned by userID and
// reports whether a matching note existed.
func (r *NotesRepo) UpdateNote(ctx context.Context, noteID, userID string, set bson.M) (bool, error) {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     noteID,
		"user_id": userID,
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		utils.TrackError("database", "note_update_failed")
		return false, err
	}

	return result.MatchedCount > 0, nil
}

// DeleteNote removes a note owned by userID and reports whether a
// matching note existed.
func (r *NotesRepo) DeleteNote(ctx context.Context, noteID, userID string) (bool, error) {
	timer := utils.TrackDBOperation("delete", "notes")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     noteID,
		"user_id": userID,
	}

	result, err := r.MongoCollection.DeleteOne(ctx, filter)
	if err != nil {
		utils.TrackError("database", "note_deletion_failed")
		return false, err
	}

	return result.DeletedCount > 0, nil
}

// SearchNotes matches the query case-insensitively against title or
// content, scoped to the caller's notes.
func (r *NotesRepo) SearchNotes(ctx context.Context, userID, query string) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	filter := bson.M{
		"user_id": userID,
		"$or": []bson.M{
			{"title": bson.M{"$regex": query, "$options": "i"}},
			{"content": bson.M{"$regex": query, "$options": "i"}},
		},
	}

	cursor, err := r.MongoCollection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	notes := []*model.Note{}
	if err = cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}
