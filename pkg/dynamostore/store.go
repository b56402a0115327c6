// Package dynamostore answers the slugger uniqueness query with a DynamoDB scan.
//
// The slug, parent and key attributes are matched with a filter expression and
// the scan runs with Select=COUNT, summing every page. Scans read the whole table,
// so this backend suits small tables and backfills; hot paths should keep a
// dedicated index.
package dynamostore

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/dmitrymomot/slugger"
)

var (
	ErrInvalidTable = errors.New("dynamostore: table name is required")
	ErrMarshalValue = errors.New("dynamostore: failed to marshal attribute value")
)

// ScanAPI is satisfied by *dynamodb.Client.
type ScanAPI = dynamodb.ScanAPIClient

// Store counts similar slugs in one table.
type Store struct {
	client ScanAPI
	table  string
}

// New returns a store for table.
func New(client ScanAPI, table string) *Store {
	return &Store{client: client, table: table}
}

// CountSimilar implements slugger.Counter.
func (s *Store) CountSimilar(ctx context.Context, q slugger.Query) (int, error) {
	if s.table == "" {
		return 0, ErrInvalidTable
	}

	input, err := ScanInput(s.table, q)
	if err != nil {
		return 0, err
	}

	n := 0
	paginator := dynamodb.NewScanPaginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		n += int(page.Count)
	}
	return n, nil
}

// ScanInput builds the counting scan:
//
//	(#c = :s OR begins_with(#c, :p)) [AND #pc = :pv] [AND #k <> :kv]
func ScanInput(table string, q slugger.Query) (*dynamodb.ScanInput, error) {
	filter := "(#c = :s OR begins_with(#c, :p))"
	names := map[string]string{"#c": q.Column}
	values := map[string]types.AttributeValue{
		":s": &types.AttributeValueMemberS{Value: q.Slug},
		":p": &types.AttributeValueMemberS{Value: q.Prefix()},
	}

	if q.Scoped() {
		v, err := attributevalue.Marshal(q.ParentValue)
		if err != nil {
			return nil, errors.Join(ErrMarshalValue, err)
		}
		filter += " AND #pc = :pv"
		names["#pc"] = q.ParentColumn
		values[":pv"] = v
	}
	if q.Excludes() {
		v, err := attributevalue.Marshal(q.KeyValue)
		if err != nil {
			return nil, errors.Join(ErrMarshalValue, err)
		}
		filter += " AND #k <> :kv"
		names["#k"] = q.KeyColumn
		values[":kv"] = v
	}

	return &dynamodb.ScanInput{
		TableName:                 aws.String(table),
		Select:                    types.SelectCount,
		FilterExpression:          aws.String(filter),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}, nil
}

var _ slugger.Counter = (*Store)(nil)
