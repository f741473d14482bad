package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Maxime-Guy/twigane/internal/model"
)

// FeedbackRepo stores learner feedback messages.
type FeedbackRepo interface {
	Create(ctx context.Context, feedback *model.Feedback) (string, error)
	List(ctx context.Context, limit int64) ([]*model.Feedback, error)
}

type feedbackRepo struct {
	collection *mongo.Collection
}

// NewFeedbackRepo creates a Mongo-backed feedback repository.
func NewFeedbackRepo(db *mongo.Database) FeedbackRepo {
	return &feedbackRepo{collection: db.Collection("feedback")}
}

func (r *feedbackRepo) Create(ctx context.Context, feedback *model.Feedback) (string, error) {
	if feedback.ID == "" {
		feedback.ID = uuid.NewString()
	}
	feedback.CreatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, feedback); err != nil {
		return "", err
	}
	return feedback.ID, nil
}

func (r *feedbackRepo) List(ctx context.Context, limit int64) ([]*model.Feedback, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var feedback []*model.Feedback
	if err := cursor.All(ctx, &feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}
