package repository

import (
	"context"
	"errors"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepo struct {
	MongoCollection *mongo.Collection
}

func GetUserRepo(client *mongo.Client) *UserRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "notes_app")
	collectionName := utils.GetEnvAsString("USERS_COLLECTION", "users")
	return &UserRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// AddUser inserts a new account record
func (r *UserRepo) AddUser(ctx context.Context, user *model.User) error {
	timer := utils.TrackDBOperation("insert", "users")
	defer timer.ObserveDuration()

	if user.UserID == "" || user.Email == "" {
		utils.TrackError("database", "invalid_user_data")
		return errors.New("user ID and email required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, user)
	if err != nil {
		utils.TrackError("database", "user_creation_failed")
		return err
	}
	return nil
}

// FindUserByEmail returns the account registered under email, or nil
// when no such account exists.
func (r *UserRepo) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	filter := bson.D{{Key: "email", Value: email}}

	err := r.MongoCollection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "user_lookup_error")
		return nil, err
	}

	return &user, nil
}

// FindUser returns the account with the given ID, or nil when it no
// longer exists (deletion-after-issuance shows up here).
func (r *UserRepo) FindUser(ctx context.Context, userID string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	filter := bson.D{{Key: "_id", Value: userID}}

	err := r.MongoCollection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "user_lookup_error")
		return nil, err
	}

	return &user, nil
}

// SetTwoFactorSecret stores a pending TOTP secret for the account
func (r *UserRepo) SetTwoFactorSecret(ctx context.Context, userID, secret string) error {
	timer := utils.TrackDBOperation("update", "users")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": userID}
	update := bson.M{
		"$set": bson.M{
			"two_factor_secret":  secret,
			"two_factor_enabled": false,
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "2fa_secret_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("user not found")
	}
	return nil
}

// EnableTwoFactor marks the account's stored TOTP secret as confirmed
func (r *UserRepo) EnableTwoFactor(ctx context.Context, userID string) error {
	timer := utils.TrackDBOperation("update", "users")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": userID}
	update := bson.M{
		"$set": bson.M{
			"two_factor_enabled": true,
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "2fa_enable_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("user not found")
	}
	return nil
}
