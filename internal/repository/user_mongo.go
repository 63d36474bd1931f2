package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"wordle_backend/internal/adapters"
	"wordle_backend/internal/domain/user"
	errs "wordle_backend/internal/errors"
)

type MongoUserStorage struct {
	log     *zap.SugaredLogger
	adapter *adapters.AdapterMongo
}

func NewMongoUserStorage(adapter *adapters.AdapterMongo, log *zap.SugaredLogger) *MongoUserStorage {
	return &MongoUserStorage{log: log, adapter: adapter}
}

func (m *MongoUserStorage) users() *mongo.Collection {
	return m.adapter.Database.Collection("users")
}

func (m *MongoUserStorage) GetUser(ctx context.Context, username string) (user.User, bool) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var result user.User
	err := m.users().FindOne(ctx, bson.M{"username": username}).Decode(&result)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			m.log.Error(err)
		}
		return user.User{}, false
	}
	return result, true
}

func (m *MongoUserStorage) GetUserByID(ctx context.Context, id string) (user.User, bool) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var result user.User
	err := m.users().FindOne(ctx, bson.M{"_id": id}).Decode(&result)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			m.log.Error(err)
		}
		return user.User{}, false
	}
	return result, true
}

func (m *MongoUserStorage) CreateUser(ctx context.Context, newUser user.User) (user.User, error) {
	if _, found := m.GetUser(ctx, newUser.Username); found {
		return user.User{}, errs.ErrUserExists
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := m.users().InsertOne(ctx, newUser)
	if err != nil {
		m.log.Errorf("failed to insert user: %v", err)
		return user.User{}, errs.ErrInternal
	}
	return newUser, nil
}

// UpdateStats writes the streak counters back. Callers serialize
// updates per user, so a plain $set does not lose increments.
func (m *MongoUserStorage) UpdateStats(ctx context.Context, userID string, stats user.Stats) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"stats":      stats,
		"updated_at": time.Now(),
	}}
	res, err := m.users().UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		m.log.Errorf("failed to update stats for user %s: %v", userID, err)
		return err
	}
	if res.MatchedCount == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

func (m *MongoUserStorage) SetHardMode(ctx context.Context, userID string, enabled bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"hard_mode":  enabled,
		"updated_at": time.Now(),
	}}
	res, err := m.users().UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		m.log.Errorf("failed to set hard mode for user %s: %v", userID, err)
		return err
	}
	if res.MatchedCount == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}
