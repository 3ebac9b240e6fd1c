package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/request-management/request-system/internal/core/domain"
	"github.com/request-management/request-system/internal/core/ports"
)

const requestsCollection = "requests"

// requestSortFields whitelists the properties requests can be sorted by.
var requestSortFields = map[string]string{
	"id":           "_id",
	"area":         "area",
	"request_type": "request_type",
	"workload":     "workload",
	"total_cost":   "total_cost",
	"status":       "status",
	"requested_at": "requested_at",
	"owner_id":     "owner_id",
}

// RequestRepository implements ports.RequestRepository using MongoDB.
type RequestRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewRequestRepository(db *mongo.Database) *RequestRepository {
	return &RequestRepository{db: db, coll: db.Collection(requestsCollection)}
}

type requestDoc struct {
	ID               int64     `bson:"_id"`
	Area             string    `bson:"area"`
	Type             string    `bson:"request_type"`
	Workload         int       `bson:"workload"`
	TotalCost        float64   `bson:"total_cost"`
	Status           string    `bson:"status"`
	RequestedAt      time.Time `bson:"requested_at"`
	OwnerID          int64     `bson:"owner_id"`
	DisapproveReason string    `bson:"disapprove_reason,omitempty"`
}

func toRequestDoc(r *domain.Request) requestDoc {
	return requestDoc{
		ID:               r.ID,
		Area:             r.Area,
		Type:             string(r.Type),
		Workload:         r.Workload,
		TotalCost:        r.TotalCost,
		Status:           string(r.Status),
		RequestedAt:      r.RequestedAt.UTC(),
		OwnerID:          r.OwnerID,
		DisapproveReason: r.DisapproveReason,
	}
}

func (d requestDoc) toDomain() *domain.Request {
	return &domain.Request{
		ID:               d.ID,
		Area:             d.Area,
		Type:             domain.RequestType(d.Type),
		Workload:         d.Workload,
		TotalCost:        d.TotalCost,
		Status:           domain.RequestStatus(d.Status),
		RequestedAt:      d.RequestedAt,
		OwnerID:          d.OwnerID,
		DisapproveReason: d.DisapproveReason,
	}
}

func (r *RequestRepository) FindByID(ctx context.Context, id int64) (*domain.Request, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc requestDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("find request: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *RequestRepository) FindAllSorted(ctx context.Context, direction ports.SortDirection, field string) ([]domain.Request, error) {
	return r.findAll(ctx, bson.M{}, direction, field)
}

func (r *RequestRepository) FindAllByOwner(ctx context.Context, ownerID int64, direction ports.SortDirection, field string) ([]domain.Request, error) {
	return r.findAll(ctx, bson.M{"owner_id": ownerID}, direction, field)
}

func (r *RequestRepository) findAll(ctx context.Context, filter bson.M, direction ports.SortDirection, field string) ([]domain.Request, error) {
	docField, ok := requestSortFields[field]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: docField, Value: sortOrder(direction)}}))
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer cur.Close(ctx)

	var docs []requestDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}

	requests := make([]domain.Request, 0, len(docs))
	for _, d := range docs {
		requests = append(requests, *d.toDomain())
	}
	return requests, nil
}

// Save inserts the request when it has no id yet and overwrites it otherwise.
func (r *RequestRepository) Save(ctx context.Context, req *domain.Request) (*domain.Request, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if req.ID == 0 {
		id, err := nextID(ctx, r.db, requestsCollection)
		if err != nil {
			return nil, err
		}
		req.ID = id

		if _, err := r.coll.InsertOne(ctx, toRequestDoc(req)); err != nil {
			return nil, fmt.Errorf("insert request: %w", err)
		}
		return req, nil
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": req.ID}, toRequestDoc(req))
	if err != nil {
		return nil, fmt.Errorf("replace request: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrRequestNotFound
	}
	return req, nil
}

func (r *RequestRepository) DeleteByID(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

// EnsureIndexes creates the owner index backing my-requests listings and the
// referential-integrity check on account deletion.
func (r *RequestRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
