package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/request-management/request-system/internal/core/domain"
	"github.com/request-management/request-system/internal/core/ports"
)

const auditCollection = "request_audit"

// AuditRepository appends lifecycle transitions to the request_audit
// collection. The trail is write-only from the service's point of view.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) ports.AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

func (r *AuditRepository) InsertStatusChange(ctx context.Context, change *domain.StatusChange) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"request_id":  change.RequestID,
		"from":        string(change.From),
		"to":          string(change.To),
		"actor_id":    change.ActorID,
		"timestamp":   change.Timestamp.UTC(),
		"recorded_at": time.Now().UTC(),
	}
	if change.Reason != "" {
		doc["reason"] = change.Reason
	}

	_, err := r.coll.InsertOne(ctx, doc)
	return err
}
