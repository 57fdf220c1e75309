package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type record = map[string]types.AttributeValue

// fakeDynamo keeps tables in memory and understands the handful of
// condition expressions the repositories emit.
type fakeDynamo struct {
	mu       sync.Mutex
	tables   map[string]map[string]record
	pageSize int
	err      error
	scans    int
}

var _ DynamoDBAPI = (*fakeDynamo)(nil)

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string]map[string]record{}}
}

func (f *fakeDynamo) put(table string, item record) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.tables[table] == nil {
		f.tables[table] = map[string]record{}
	}
	f.tables[table][item["id"].(*types.AttributeValueMemberS).Value] = item
}

func keyOf(key record) string {
	return key["id"].(*types.AttributeValueMemberS).Value
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return &dynamodb.GetItemOutput{Item: f.tables[aws.ToString(in.TableName)][keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	table := aws.ToString(in.TableName)
	if f.tables[table] == nil {
		f.tables[table] = map[string]record{}
	}
	id := keyOf(in.Item)
	existing, exists := f.tables[table][id]
	cond := aws.ToString(in.ConditionExpression)
	failed := &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}

	if strings.Contains(cond, "attribute_not_exists(#id)") && exists {
		return nil, failed
	}
	if strings.Contains(cond, "attribute_exists(#id)") && !strings.Contains(cond, "not_exists") && !exists {
		return nil, failed
	}
	if strings.Contains(cond, "#version = :expected") {
		want := in.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberN).Value
		got, ok := existing["version"].(*types.AttributeValueMemberN)
		if !ok || got.Value != want {
			return nil, failed
		}
	}
	f.tables[table][id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	want := in.ExpressionAttributeValues[":code"].(*types.AttributeValueMemberS).Value
	var items []record
	for _, it := range f.tables[aws.ToString(in.TableName)] {
		if c, ok := it["code"].(*types.AttributeValueMemberS); ok && c.Value == want {
			items = append(items, it)
		}
	}
	return &dynamodb.QueryOutput{Items: items, Count: int32(len(items))}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scans++
	table := f.tables[aws.ToString(in.TableName)]
	ids := make([]string, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	start := 0
	if in.ExclusiveStartKey != nil {
		after := keyOf(in.ExclusiveStartKey)
		start = sort.SearchStrings(ids, after) + 1
	}
	end := len(ids)
	if f.pageSize > 0 && start+f.pageSize < end {
		end = start + f.pageSize
	}
	out := &dynamodb.ScanOutput{}
	for _, id := range ids[start:end] {
		out.Items = append(out.Items, table[id])
	}
	if end < len(ids) {
		out.LastEvaluatedKey = record{"id": &types.AttributeValueMemberS{Value: ids[end-1]}}
	}
	return out, nil
}
