package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"wiki-analyzer/models"
)

type ArticleEventRepository struct {
	col *mongo.Collection
}

func NewArticleEventRepository(db *mongo.Database) *ArticleEventRepository {
	return &ArticleEventRepository{col: db.Collection("article_events")}
}

// Insert 는 이벤트를 저장한다. 재주입으로 같은 event_id 가 다시 들어오면
// uniq_event_id 인덱스에 걸리며, 이 경우 이미 기록된 것으로 보고 성공 처리한다.
func (r *ArticleEventRepository) Insert(ctx context.Context, ev models.ArticleEvent) (bool, error) {
	if ev.RecordedAt.IsZero() {
		ev.RecordedAt = time.Now().UTC()
	}
	if _, err := r.col.InsertOne(ctx, ev); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
