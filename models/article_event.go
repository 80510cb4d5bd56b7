package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ArticleEvent is an audit record of a saved-article lifecycle change.
// Collection: article_events
type ArticleEvent struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventID    string             `bson:"event_id" json:"event_id"`
	Type       string             `bson:"type" json:"type"`
	ArticleID  int64              `bson:"article_id,omitempty" json:"article_id,omitempty"`
	Title      string             `bson:"title" json:"title"`
	URL        string             `bson:"url,omitempty" json:"url,omitempty"`
	Note       *string            `bson:"note,omitempty" json:"note,omitempty"`
	Topics     []string           `bson:"topics,omitempty" json:"topics,omitempty"`
	Complexity string             `bson:"complexity,omitempty" json:"complexity,omitempty"`
	WordCount  int                `bson:"word_count" json:"word_count"`
	Sentiment  string             `bson:"sentiment,omitempty" json:"sentiment,omitempty"`
	Retry      int                `bson:"retry" json:"retry"`
	OccurredAt time.Time          `bson:"occurred_at" json:"occurred_at"`
	RecordedAt time.Time          `bson:"recorded_at" json:"recorded_at"`
}
