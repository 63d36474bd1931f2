package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"wordle_backend/internal/adapters"
	"wordle_backend/internal/domain/session"
	"wordle_backend/internal/statuses"
)

type MongoSessionStorage struct {
	log     *zap.SugaredLogger
	adapter *adapters.AdapterMongo
}

func NewMongoSessionStorage(adapter *adapters.AdapterMongo, log *zap.SugaredLogger) *MongoSessionStorage {
	return &MongoSessionStorage{log: log, adapter: adapter}
}

func (m *MongoSessionStorage) sessions() *mongo.Collection {
	return m.adapter.Database.Collection("sessions")
}

// EnsureIndexes creates the unique (user_id, date) index the engine's
// no-lost-update guarantee leans on.
func (m *MongoSessionStorage) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := m.sessions().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (m *MongoSessionStorage) GetSession(ctx context.Context, userID, date string) (session.GameSession, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"user_id": userID, "date": date}

	var result session.GameSession
	err := m.sessions().FindOne(ctx, filter).Decode(&result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return session.GameSession{}, false, nil
	} else if err != nil {
		m.log.Error(err)
		return session.GameSession{}, false, err
	}
	return result, true, nil
}

func (m *MongoSessionStorage) CreateSession(ctx context.Context, s session.GameSession) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := m.sessions().InsertOne(ctx, s)
	if err != nil {
		m.log.Errorf("failed to insert session %s/%s: %v", s.UserID, s.Date, err)
		return err
	}
	return nil
}

func (m *MongoSessionStorage) UpdateSession(ctx context.Context, s session.GameSession) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"user_id": s.UserID, "date": s.Date}

	res, err := m.sessions().ReplaceOne(ctx, filter, s)
	if err != nil {
		m.log.Errorf("failed to update session %s/%s: %v", s.UserID, s.Date, err)
		return err
	}
	if res.MatchedCount == 0 {
		m.log.Errorf("session %s/%s not found on update", s.UserID, s.Date)
		return mongo.ErrNoDocuments
	}
	return nil
}

func (m *MongoSessionStorage) GetSolvedDates(ctx context.Context, userID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"user_id": userID, "status": statuses.StatusSolved}
	opts := options.Find().SetProjection(bson.M{"date": 1}).SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := m.sessions().Find(ctx, filter, opts)
	if err != nil {
		m.log.Error(err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var dates []string
	for cursor.Next(ctx) {
		var doc struct {
			Date string `bson:"date"`
		}
		if err = cursor.Decode(&doc); err != nil {
			m.log.Error(err)
			return nil, err
		}
		dates = append(dates, doc.Date)
	}
	return dates, cursor.Err()
}
