package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mkzaman/customer-backend-go/models"
)

var (
	// ErrNotFound means no customer document exists for the given id.
	ErrNotFound = errors.New("customer not found")
	// ErrConflict means the caller's version is stale: another writer saved
	// the document after the caller loaded it. Nothing was overwritten.
	ErrConflict = errors.New("customer version conflict")
)

// ValidationError lists every field constraint violated on the aggregate
// being saved, across the customer and all embedded orders, products and
// addresses.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "customer validation failed: " + strings.Join(e.Violations, "; ")
}

// CustomerRepository is the sole persistence boundary for customer
// aggregates. Customers are loaded and saved whole; embedded orders are never
// written through a partial update.
type CustomerRepository struct {
	coll *mongo.Collection
}

func NewCustomerRepository(db *mongo.Database) *CustomerRepository {
	return &CustomerRepository{coll: db.Collection("customer")}
}

// Load fetches the full customer document by id.
func (r *CustomerRepository) Load(ctx context.Context, id string) (*models.Customer, error) {
	var customer models.Customer
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&customer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load customer %s: %w", id, err)
	}
	return &customer, nil
}

// Save writes the whole aggregate and returns the stored state. It validates
// the full entity graph, runs the prepare-for-write transform, and then either
// inserts (allocating id, version 0 and createdAt) or replaces the existing
// document filtered on the caller's version. A version mismatch yields
// ErrConflict and leaves the stored document untouched. Save is the only
// writer of id, version, createdAt and updatedAt.
func (r *CustomerRepository) Save(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	if err := models.ValidateStruct(customer); err != nil {
		return nil, &ValidationError{Violations: models.Violations(err)}
	}

	prepared := PrepareForWrite(*customer)
	now := time.Now().UTC()
	prepared.UpdatedAt = now

	if prepared.ID == "" {
		prepared.ID = primitive.NewObjectID().Hex()
		prepared.CreatedAt = now
		prepared.Version = 0
		if _, err := r.coll.InsertOne(ctx, prepared); err != nil {
			return nil, fmt.Errorf("insert customer: %w", err)
		}
		return &prepared, nil
	}

	expected := prepared.Version
	prepared.Version = expected + 1
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": prepared.ID, "version": expected}, prepared)
	if err != nil {
		return nil, fmt.Errorf("replace customer %s: %w", prepared.ID, err)
	}
	if res.MatchedCount == 0 {
		// Either the stored version moved on or the document is gone.
		n, countErr := r.coll.CountDocuments(ctx, bson.M{"_id": prepared.ID})
		if countErr == nil && n == 0 {
			return nil, ErrNotFound
		}
		return nil, ErrConflict
	}
	return &prepared, nil
}
