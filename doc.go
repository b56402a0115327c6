// Package slugger generates URL-safe slugs for records and keeps them unique within
// a configurable scope before the host persists the record.
//
// A slug is derived from one field of a record (the source), normalized into a
// separator-joined token, checked against existing records and written into another
// field (the column). When other records already use the slug, the number of those
// records is appended after the separator.
//
// # Quick Start
//
//	counter := pgstore.New(pool, "posts")
//	s := slugger.New(counter)
//
//	post := map[string]any{"title": "Hello World", "blog_id": 7}
//	rec := slugger.NewMap(post, "id")
//
//	err := s.BeforeSave(ctx, rec, slugger.Config{
//		Source: "title",
//		Unique: slugger.UniqueParent,
//		Parent: &slugger.Parent{Name: "Blog"},
//	})
//	// post["slug"] == "hello-world", or "hello-world-1" when blog 7 already has one
//
// # Uniqueness Scopes
//
//   - [UniqueNone] uses the normalized text verbatim; no query is issued.
//   - [UniqueAll] counts records whose column equals the slug or starts with slug+separator.
//   - [UniqueParent] does the same within records sharing the parent column value.
//     The parent column defaults to "<lowercased parent name>_<parent key>", e.g. "blog_id".
//
// The conflict count is used as the suffix directly. It is not the highest existing
// suffix plus one, so "foo" and "foo-5" stored together yield "foo-2".
//
// # Concurrency
//
// Counting and writing are separate steps with no lock or transaction around them. Two
// concurrent saves with the same source text may get the same slug. Hosts that need strict
// uniqueness must add a database unique constraint and retry the save on violation.
//
// # Configuration
//
// Per-record [Config] values override process-wide [Defaults]. [LoadDefaults] reads
// defaults from an optional YAML file and SLUGGER_* environment variables:
//
//	SLUGGER_COLUMN    - slug column (default: slug)
//	SLUGGER_SEPARATOR - separator (default: -)
//	SLUGGER_UNIQUE    - none, all or parent (default: none)
//
// # Backends
//
// The uniqueness query is supplied through the [Counter] interface. Ready-made
// implementations live in pkg/memstore, pkg/pgstore, pkg/mongostore, pkg/redisstore
// and pkg/dynamostore.
//
// # Error Handling
//
// Configuration problems are joined with [ErrInvalidConfig] and abort before the record is
// modified. Backend failures are joined with [ErrQueryFailed]. Nothing is retried.
package slugger
