package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/request-management/request-system/internal/core/domain"
	"github.com/request-management/request-system/internal/core/ports"
)

const accountsCollection = "accounts"

// Index names referenced when classifying duplicate-key errors.
const (
	idxUniqueUsername   = "unique_username"
	idxUniqueNationalID = "unique_national_id"
	idxUniqueEmail      = "unique_email"
)

// accountSortFields whitelists the properties accounts can be sorted by and
// maps them to their document fields.
var accountSortFields = map[string]string{
	"id":                  "_id",
	"username":            "username",
	"national_id":         "national_id",
	"email":               "email",
	"name":                "name",
	"birth_date":          "birth_date",
	"registration_number": "registration_number",
	"role":                "role",
	"created_at":          "created_at",
}

// AccountRepository implements ports.AccountRepository using MongoDB.
// Ids are allocated from the shared counters collection.
type AccountRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{db: db, coll: db.Collection(accountsCollection)}
}

type accountDoc struct {
	ID                 int64     `bson:"_id"`
	Username           string    `bson:"username"`
	NationalID         string    `bson:"national_id"`
	Email              string    `bson:"email"`
	PasswordHash       string    `bson:"password_hash"`
	Role               string    `bson:"role"`
	Name               string    `bson:"name"`
	BirthDate          time.Time `bson:"birth_date"`
	Gender             string    `bson:"gender,omitempty"`
	RegistrationNumber string    `bson:"registration_number"`
	CreatedAt          time.Time `bson:"created_at"`
	UpdatedAt          time.Time `bson:"updated_at"`
}

func toAccountDoc(a *domain.Account) accountDoc {
	return accountDoc{
		ID:                 a.ID,
		Username:           a.Username,
		NationalID:         a.NationalID,
		Email:              a.Email,
		PasswordHash:       a.PasswordHash,
		Role:               a.Role,
		Name:               a.Name,
		BirthDate:          a.BirthDate.UTC(),
		Gender:             a.Gender,
		RegistrationNumber: a.RegistrationNumber,
		CreatedAt:          a.CreatedAt.UTC(),
		UpdatedAt:          a.UpdatedAt.UTC(),
	}
}

func (d accountDoc) toDomain() *domain.Account {
	return &domain.Account{
		ID:                 d.ID,
		Username:           d.Username,
		NationalID:         d.NationalID,
		Email:              d.Email,
		PasswordHash:       d.PasswordHash,
		Role:               d.Role,
		Name:               d.Name,
		BirthDate:          d.BirthDate,
		Gender:             d.Gender,
		RegistrationNumber: d.RegistrationNumber,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

func (r *AccountRepository) FindByID(ctx context.Context, id int64) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *AccountRepository) FindByNationalID(ctx context.Context, nationalID string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"national_id": nationalID})
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *AccountRepository) findOne(ctx context.Context, filter bson.M) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc accountDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AccountRepository) FindAllSorted(ctx context.Context, direction ports.SortDirection, field string) ([]domain.Account, error) {
	docField, ok := accountSortFields[field]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: docField, Value: sortOrder(direction)}}))
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer cur.Close(ctx)

	var docs []accountDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	accounts := make([]domain.Account, 0, len(docs))
	for _, d := range docs {
		accounts = append(accounts, *d.toDomain())
	}
	return accounts, nil
}

// Save inserts the account when it has no id yet and overwrites it otherwise.
// Duplicate-key errors are classified by the unique index that fired.
func (r *AccountRepository) Save(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if a.ID == 0 {
		id, err := nextID(ctx, r.db, accountsCollection)
		if err != nil {
			return nil, err
		}
		a.ID = id

		if _, err := r.coll.InsertOne(ctx, toAccountDoc(a)); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, classifyDuplicateKey(err)
			}
			return nil, fmt.Errorf("insert account: %w", err)
		}
		return a, nil
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": a.ID}, toAccountDoc(a))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, classifyDuplicateKey(err)
		}
		return nil, fmt.Errorf("replace account: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrAccountNotFound
	}
	return a, nil
}

// DeleteByID rejects the deletion while the account still owns requests;
// integrity violations are surfaced, never cascaded.
func (r *AccountRepository) DeleteByID(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	owned, err := r.db.Collection(requestsCollection).CountDocuments(ctx, bson.M{"owner_id": id})
	if err != nil {
		return fmt.Errorf("count owned requests: %w", err)
	}
	if owned > 0 {
		return domain.ErrAccountInUse
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// EnsureIndexes creates the named unique indexes the duplicate classification
// depends on.
func (r *AccountRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(idxUniqueUsername),
		},
		{
			Keys:    bson.D{{Key: "national_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(idxUniqueNationalID),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(idxUniqueEmail),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

// classifyDuplicateKey maps a duplicate-key error to the field-tagged conflict
// by looking for the unique index name in the error text. When the error does
// not name a specific index, the conflict is treated as a username conflict.
func classifyDuplicateKey(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, idxUniqueNationalID):
		return domain.ErrDuplicateNationalID
	case strings.Contains(msg, idxUniqueEmail):
		return domain.ErrDuplicateEmail
	default:
		return domain.ErrDuplicateUsername
	}
}

// sortOrder converts a SortDirection to Mongo's 1/-1 convention.
func sortOrder(direction ports.SortDirection) int {
	if direction == ports.SortDesc {
		return -1
	}
	return 1
}
