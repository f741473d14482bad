package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Maxime-Guy/twigane/internal/model"
)

// ActivityRepo archives tracked user activities.
type ActivityRepo interface {
	Insert(ctx context.Context, activity *model.Activity) error
	ListByUser(ctx context.Context, userEmail string, limit int64) ([]*model.Activity, error)
	CountByUser(ctx context.Context, userEmail string) (int64, error)
	DistinctUsers(ctx context.Context) ([]string, error)
}

type activityRepo struct {
	collection *mongo.Collection
}

// NewActivityRepo creates a Mongo-backed activity repository.
func NewActivityRepo(db *mongo.Database) ActivityRepo {
	return &activityRepo{collection: db.Collection("activities")}
}

func (r *activityRepo) Insert(ctx context.Context, activity *model.Activity) error {
	if activity.Timestamp.IsZero() {
		activity.Timestamp = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, activity)
	return err
}

func (r *activityRepo) ListByUser(ctx context.Context, userEmail string, limit int64) ([]*model.Activity, error) {
	opts := options.Find().SetSort(bson.M{"timestamp": -1})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	cursor, err := r.collection.Find(ctx, bson.M{"userEmail": userEmail}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var activities []*model.Activity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepo) CountByUser(ctx context.Context, userEmail string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"userEmail": userEmail})
}

func (r *activityRepo) DistinctUsers(ctx context.Context) ([]string, error) {
	values, err := r.collection.Distinct(ctx, "userEmail", bson.M{})
	if err != nil {
		return nil, err
	}
	users := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			users = append(users, s)
		}
	}
	return users, nil
}
