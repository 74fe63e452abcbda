package models

import "go.mongodb.org/mongo-driver/bson"

// Gift is a document in the "gifts" collection. Gifts carry an open set of
// descriptive fields supplied by the creator (name, category, condition,
// image, age_years, ...), so the model is a plain document rather than a
// fixed struct. The "id" field is the lookup key used by the catalog routes;
// it is distinct from the store-assigned "_id".
type Gift bson.M

// GiftID returns the value of the "id" field, or "" when absent.
func (g Gift) GiftID() string {
	if id, ok := g["id"].(string); ok {
		return id
	}
	return ""
}
