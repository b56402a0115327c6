// Package mongostore answers the slugger uniqueness query with MongoDB.
//
//	coll := client.Database("blog").Collection("posts")
//	s := slugger.New(mongostore.New(coll))
//
// Parent and key values are matched with their BSON type, so an int parent id
// does not match the string "1". A key column named "id" is stored as "_id", and a
// hex string key is matched as an ObjectID when it parses as one.
package mongostore

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/slugger"
)

var ErrNotFound = errors.New("mongostore: document not found")

// CountAPI is the subset of *mongo.Collection used to count similar slugs.
type CountAPI interface {
	CountDocuments(ctx context.Context, filter any, opts ...options.Lister[options.CountOptions]) (int64, error)
}

// FindAPI is the subset of *mongo.Collection used for slug lookups.
type FindAPI interface {
	FindOne(ctx context.Context, filter any, opts ...options.Lister[options.FindOneOptions]) *mongo.SingleResult
}

// Store counts similar slugs in one collection.
type Store struct {
	coll CountAPI
}

// New returns a store backed by coll.
func New(coll CountAPI) *Store {
	return &Store{coll: coll}
}

// CountSimilar implements slugger.Counter.
func (s *Store) CountSimilar(ctx context.Context, q slugger.Query) (int, error) {
	n, err := s.coll.CountDocuments(ctx, Filter(q))
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// Filter renders the uniqueness query:
//
//	{$and: [{$or: [{slug: s}, {slug: {$regex: ^s-}}]}, {parent: v}, {_id: {$ne: k}}]}
func Filter(q slugger.Query) bson.D {
	and := bson.A{
		bson.D{{Key: "$or", Value: bson.A{
			bson.D{{Key: q.Column, Value: q.Slug}},
			bson.D{{Key: q.Column, Value: bson.Regex{Pattern: "^" + regexp.QuoteMeta(q.Prefix())}}},
		}}},
	}
	if q.Scoped() {
		and = append(and, bson.D{{Key: field(q.ParentColumn), Value: q.ParentValue}})
	}
	if q.Excludes() {
		and = append(and, bson.D{{Key: field(q.KeyColumn), Value: bson.D{{Key: "$ne", Value: keyValue(q.KeyValue)}}}})
	}
	return bson.D{{Key: "$and", Value: and}}
}

// FindBy decodes into dest the first document whose column equals value.
func FindBy(ctx context.Context, coll FindAPI, column string, value any, dest any) error {
	if column == "id" || column == "_id" {
		value = keyValue(value)
	}
	err := coll.FindOne(ctx, bson.D{{Key: field(column), Value: value}}).Decode(dest)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

func field(column string) string {
	if column == "id" {
		return "_id"
	}
	return column
}

func keyValue(v any) any {
	if s, ok := v.(string); ok {
		if oid, err := bson.ObjectIDFromHex(s); err == nil {
			return oid
		}
	}
	return v
}

var _ slugger.Counter = (*Store)(nil)
