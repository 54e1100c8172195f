package storage

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/jonboulle/clockwork"
)

const (
	attrScope     = "scope"
	attrKey       = "key"
	attrValue     = "value"
	attrUpdatedAt = "updated_at"
)

// DynamoDBClientAPI is the subset of the DynamoDB client used by the store.
type DynamoDBClientAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// DynamoDBStore keeps settings in a DynamoDB table keyed by (scope, key),
// so a fleet of installations can share one table.
type DynamoDBStore struct {
	client DynamoDBClientAPI
	table  string
	scope  string
	clock  clockwork.Clock
}

// NewDynamoDBStore creates a store over table. endpoint overrides the service
// endpoint, e.g. for DynamoDB Local. A nil clock uses the real clock.
func NewDynamoDBStore(cfg aws.Config, table, scope, endpoint string, clock clockwork.Clock) *DynamoDBStore {
	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
	return newDynamoDBStore(client, table, scope, clock)
}

func newDynamoDBStore(client DynamoDBClientAPI, table, scope string, clock clockwork.Clock) *DynamoDBStore {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &DynamoDBStore{
		client: client,
		table:  table,
		scope:  scopeOrDefault(scope),
		clock:  clock,
	}
}

func (s *DynamoDBStore) itemKey(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		attrScope: &types.AttributeValueMemberS{Value: s.scope},
		attrKey:   &types.AttributeValueMemberS{Value: key},
	}
}

func (s *DynamoDBStore) Contains(ctx context.Context, key string) (bool, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:                aws.String(s.table),
		Key:                      s.itemKey(key),
		ConsistentRead:           aws.Bool(true),
		ProjectionExpression:     aws.String("#k"),
		ExpressionAttributeNames: map[string]string{"#k": attrKey},
	})
	if err != nil {
		return false, fmt.Errorf("failed to query setting %q: %w", key, err)
	}
	return len(out.Item) > 0, nil
}

func (s *DynamoDBStore) Get(ctx context.Context, key string) (string, bool, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.table),
		Key:            s.itemKey(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", false, fmt.Errorf("failed to read setting %q: %w", key, err)
	}
	if len(out.Item) == 0 {
		return "", false, nil
	}
	v, ok := out.Item[attrValue].(*types.AttributeValueMemberS)
	if !ok {
		return "", false, fmt.Errorf("setting %q has no string value", key)
	}
	return v.Value, true, nil
}

func (s *DynamoDBStore) Set(ctx context.Context, key, value string) error {
	item := s.itemKey(key)
	item[attrValue] = &types.AttributeValueMemberS{Value: value}
	item[attrUpdatedAt] = &types.AttributeValueMemberS{Value: s.clock.Now().UTC().Format(time.RFC3339)}

	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("failed to write setting %q: %w", key, err)
	}
	return nil
}

func (s *DynamoDBStore) Delete(ctx context.Context, key string) error {
	if _, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.table),
		Key:       s.itemKey(key),
	}); err != nil {
		return fmt.Errorf("failed to delete setting %q: %w", key, err)
	}
	return nil
}

func (s *DynamoDBStore) Keys(ctx context.Context) ([]string, error) {
	p := dynamodb.NewQueryPaginator(s.client, &dynamodb.QueryInput{
		TableName:                aws.String(s.table),
		KeyConditionExpression:   aws.String("#s = :scope"),
		ProjectionExpression:     aws.String("#k"),
		ExpressionAttributeNames: map[string]string{"#s": attrScope, "#k": attrKey},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":scope": &types.AttributeValueMemberS{Value: s.scope},
		},
	})

	keys := []string{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list settings: %w", err)
		}
		for _, item := range page.Items {
			if k, ok := item[attrKey].(*types.AttributeValueMemberS); ok {
				keys = append(keys, k.Value)
			}
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// Close is a no-op; the SDK client holds no resources that need releasing.
func (s *DynamoDBStore) Close() error {
	return nil
}
