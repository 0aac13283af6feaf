package mongo

import (
	"context"
	"time"

	"billing/internal/domain/entity"
	"billing/internal/domain/repository"
	"billing/internal/errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const colActivityLogs = "activity_logs"

// activityLogDocument is the stored shape of an activity log entry.
type activityLogDocument struct {
	ID          string         `bson:"_id"`
	UserID      string         `bson:"user_id"`
	UserType    string         `bson:"user_type"`
	Description string         `bson:"description"`
	Metadata    map[string]any `bson:"metadata,omitempty"`
	CreatedAt   time.Time      `bson:"created_at"`
}

// activityLogRepository implements the repository.ActivityLogRepository interface on MongoDB.
type activityLogRepository struct {
	col *mongo.Collection
}

// NewActivityLogRepository is the constructor for activityLogRepository.
func NewActivityLogRepository(db *mongo.Database) repository.ActivityLogRepository {
	return &activityLogRepository{
		col: db.Collection(colActivityLogs),
	}
}

func ensureActivityLogIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(colActivityLogs).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "user_type", Value: 1}, {Key: "created_at", Value: -1}}},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create activity log indexes")
	}

	return nil
}

// CreateActivityLog appends an entry.
func (repo *activityLogRepository) CreateActivityLog(ctx context.Context, log *entity.ActivityLog) error {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}

	doc := activityLogDocument{
		ID:          log.ID.String(),
		UserID:      log.UserID.String(),
		UserType:    string(log.UserType),
		Description: log.Description,
		Metadata:    log.Metadata,
		CreatedAt:   log.CreatedAt.UTC(),
	}

	if _, err := repo.col.InsertOne(ctx, doc); err != nil {
		return errors.Wrap(err, "failed to insert activity log")
	}

	return nil
}

// ListActivityLogs returns a page of entries, newest first, and the total matching count.
func (repo *activityLogRepository) ListActivityLogs(ctx context.Context, filter entity.ActivityLogFilter) ([]*entity.ActivityLog, int64, error) {
	query := bson.M{}
	if filter.UserType != nil {
		query["user_type"] = string(*filter.UserType)
	}

	total, err := repo.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count activity logs")
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(filter.Offset())).
		SetLimit(int64(filter.Limit))

	cursor, err := repo.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list activity logs")
	}
	defer cursor.Close(ctx)

	var docs []activityLogDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, errors.Wrap(err, "failed to decode activity logs")
	}

	logs := make([]*entity.ActivityLog, 0, len(docs))
	for i := range docs {
		logs = append(logs, fromActivityLogDocument(&docs[i]))
	}

	return logs, total, nil
}

// DeleteActivityLogsBefore removes entries created before cutoff.
func (repo *activityLogRepository) DeleteActivityLogsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := repo.col.DeleteMany(ctx, bson.M{"created_at": bson.M{"$lt": cutoff.UTC()}})
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge activity logs")
	}

	return res.DeletedCount, nil
}

// DeleteAllActivityLogs empties the trail.
func (repo *activityLogRepository) DeleteAllActivityLogs(ctx context.Context) (int64, error) {
	res, err := repo.col.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete activity logs")
	}

	return res.DeletedCount, nil
}

func fromActivityLogDocument(doc *activityLogDocument) *entity.ActivityLog {
	// A malformed id maps to uuid.Nil.
	id, _ := uuid.Parse(doc.ID)
	userID, _ := uuid.Parse(doc.UserID)

	return &entity.ActivityLog{
		ID:          id,
		UserID:      userID,
		UserType:    entity.UserType(doc.UserType),
		Description: doc.Description,
		Metadata:    doc.Metadata,
		CreatedAt:   doc.CreatedAt,
	}
}
