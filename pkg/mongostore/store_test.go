package mongostore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/slugger"
	"github.com/dmitrymomot/slugger/pkg/mongostore"
)

type fakeCollection struct {
	n      int64
	err    error
	filter any
}

func (f *fakeCollection) CountDocuments(_ context.Context, filter any, _ ...options.Lister[options.CountOptions]) (int64, error) {
	f.filter = filter
	return f.n, f.err
}

func TestFilter(t *testing.T) {
	t.Parallel()

	t.Run("global", func(t *testing.T) {
		t.Parallel()

		got := mongostore.Filter(slugger.Query{Column: "slug", Slug: "a.b", Separator: "-"})
		expected := bson.D{{Key: "$and", Value: bson.A{
			bson.D{{Key: "$or", Value: bson.A{
				bson.D{{Key: "slug", Value: "a.b"}},
				bson.D{{Key: "slug", Value: bson.Regex{Pattern: `^a\.b-`}}},
			}}},
		}}}
		assert.Equal(t, expected, got)
	})

	t.Run("parent and object id key", func(t *testing.T) {
		t.Parallel()

		oid := bson.NewObjectID()
		got := mongostore.Filter(slugger.Query{
			Column: "slug", Slug: "a", Separator: "-",
			ParentColumn: "blog_id", ParentValue: 3,
			KeyColumn: "id", KeyValue: oid.Hex(),
		})

		and := got[0].Value.(bson.A)
		require.Len(t, and, 3)
		assert.Equal(t, bson.D{{Key: "blog_id", Value: 3}}, and[1])
		assert.Equal(t, bson.D{{Key: "_id", Value: bson.D{{Key: "$ne", Value: oid}}}}, and[2])
	})

	t.Run("plain string key", func(t *testing.T) {
		t.Parallel()

		got := mongostore.Filter(slugger.Query{Column: "slug", Slug: "a", KeyColumn: "uuid", KeyValue: "post-7"})
		and := got[0].Value.(bson.A)
		assert.Equal(t, bson.D{{Key: "uuid", Value: bson.D{{Key: "$ne", Value: "post-7"}}}}, and[1])
	})
}

func TestStore_CountSimilar(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("resolves with the driver count", func(t *testing.T) {
		t.Parallel()

		coll := &fakeCollection{n: 2}
		s := slugger.New(mongostore.New(coll))
		rec := slugger.NewMap(map[string]any{"title": "Hello World"}, "id")

		got, err := s.Build(ctx, rec, slugger.Config{Source: "title", Unique: slugger.UniqueAll})
		require.NoError(t, err)
		assert.Equal(t, "hello-world-2", got)
		assert.NotNil(t, coll.filter)
	})

	t.Run("driver error", func(t *testing.T) {
		t.Parallel()

		errTimeout := errors.New("server selection timeout")
		_, err := mongostore.New(&fakeCollection{err: errTimeout}).CountSimilar(ctx, slugger.Query{Column: "slug", Slug: "a"})
		require.ErrorIs(t, err, errTimeout)
	})
}

type fakeFinder struct {
	doc    any
	err    error
	filter any
}

func (f *fakeFinder) FindOne(_ context.Context, filter any, _ ...options.Lister[options.FindOneOptions]) *mongo.SingleResult {
	f.filter = filter
	return mongo.NewSingleResultFromDocument(f.doc, f.err, nil)
}

func TestFindBy(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("decodes the document", func(t *testing.T) {
		t.Parallel()

		finder := &fakeFinder{doc: bson.D{{Key: "title", Value: "Hello World"}, {Key: "slug", Value: "hello-world"}}}
		var got bson.M
		require.NoError(t, mongostore.FindBy(ctx, finder, "slug", "hello-world", &got))
		assert.Equal(t, "Hello World", got["title"])
		assert.Equal(t, bson.D{{Key: "slug", Value: "hello-world"}}, finder.filter)
	})

	t.Run("id maps to object id", func(t *testing.T) {
		t.Parallel()

		oid := bson.NewObjectID()
		finder := &fakeFinder{doc: bson.D{{Key: "_id", Value: oid}}}
		var got bson.M
		require.NoError(t, mongostore.FindBy(ctx, finder, "id", oid.Hex(), &got))
		assert.Equal(t, bson.D{{Key: "_id", Value: oid}}, finder.filter)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		finder := &fakeFinder{doc: bson.D{}, err: mongo.ErrNoDocuments}
		var got bson.M
		err := mongostore.FindBy(ctx, finder, "slug", "missing", &got)
		require.ErrorIs(t, err, mongostore.ErrNotFound)
	})
}
