package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ojay234/fullstack-capstone-project/internal/database"
	"github.com/ojay234/fullstack-capstone-project/internal/models"
)

// SearchCriteria are the filters the search endpoint accepts. Zero values
// mean "no constraint"; an empty criteria set matches every gift.
type SearchCriteria struct {
	Name        string
	Category    string
	Condition   string
	MaxAgeYears float64
	HasMaxAge   bool
}

// GiftRepository is the persistence boundary for the "gifts" collection.
// Documents are stored verbatim; the lookup key is the string "id" field.
type GiftRepository interface {
	All(ctx context.Context) ([]models.Gift, error)
	FindByGiftID(ctx context.Context, id string) (models.Gift, error)
	Insert(ctx context.Context, gift models.Gift) (models.Gift, error)
	Search(ctx context.Context, criteria SearchCriteria) ([]models.Gift, error)
}

type mongoGiftRepository struct {
	conn *database.Connector
}

func NewGiftRepository(conn *database.Connector) GiftRepository {
	return &mongoGiftRepository{conn: conn}
}

func (r *mongoGiftRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := r.conn.Database(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection("gifts"), nil
}

func (r *mongoGiftRepository) All(ctx context.Context) ([]models.Gift, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoGiftRepository) FindByGiftID(ctx context.Context, id string) (models.Gift, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	var gift models.Gift
	err = coll.FindOne(ctx, bson.M{"id": id}).Decode(&gift)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find gift: %w", err)
	}
	return gift, nil
}

func (r *mongoGiftRepository) Insert(ctx context.Context, gift models.Gift) (models.Gift, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	res, err := coll.InsertOne(ctx, bson.M(gift))
	if err != nil {
		return nil, fmt.Errorf("failed to insert gift: %w", err)
	}

	stored := models.Gift{}
	for k, v := range gift {
		stored[k] = v
	}
	stored["_id"] = res.InsertedID
	return stored, nil
}

func (r *mongoGiftRepository) Search(ctx context.Context, criteria SearchCriteria) ([]models.Gift, error) {
	return r.find(ctx, searchFilter(criteria))
}

func (r *mongoGiftRepository) find(ctx context.Context, filter bson.M) ([]models.Gift, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query gifts: %w", err)
	}
	defer cursor.Close(ctx)

	gifts := []models.Gift{}
	if err := cursor.All(ctx, &gifts); err != nil {
		return nil, fmt.Errorf("failed to decode gifts: %w", err)
	}
	return gifts, nil
}

// searchFilter translates criteria into a Mongo filter: case-insensitive
// prefix match on name, exact match on category and condition, and an
// upper bound on age_years.
func searchFilter(c SearchCriteria) bson.M {
	filter := bson.M{}
	if c.Name != "" {
		filter["name"] = bson.M{"$regex": "^" + regexp.QuoteMeta(c.Name), "$options": "i"}
	}
	if c.Category != "" {
		filter["category"] = c.Category
	}
	if c.Condition != "" {
		filter["condition"] = c.Condition
	}
	if c.HasMaxAge {
		filter["age_years"] = bson.M{"$lte": c.MaxAgeYears}
	}
	return filter
}
