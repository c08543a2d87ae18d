package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory stand-in for the DynamoDB client. It understands
// exactly the requests DynamoService issues: key get/put/delete, the atomic
// counter expression, the conditional ready-flip, prefix queries, and the two
// scan filters. Counter arithmetic is performed for real so the services'
// read-modify semantics are exercised, and every write is counted so tests
// can assert that no-op transitions issue zero writes.
type fakeDynamo struct {
	items map[string]map[string]types.AttributeValue

	puts    int
	deletes int
	updates int
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) writes() int {
	return f.puts + f.deletes + f.updates
}

func attrString(attr types.AttributeValue) string {
	if s, ok := attr.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func attrNumber(attr types.AttributeValue) int64 {
	if n, ok := attr.(*types.AttributeValueMemberN); ok {
		value, _ := strconv.ParseInt(n.Value, 10, 64)
		return value
	}
	return 0
}

func numberAttr(value int64) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: strconv.FormatInt(value, 10)}
}

func storageKey(key map[string]types.AttributeValue) string {
	return attrString(key["PK"]) + "|" + attrString(key["SK"])
}

func copyItem(item map[string]types.AttributeValue) map[string]types.AttributeValue {
	duplicate := make(map[string]types.AttributeValue, len(item))
	for name, value := range item {
		duplicate[name] = value
	}
	return duplicate
}

func (f *fakeDynamo) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	item, ok := f.items[storageKey(params.Key)]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: copyItem(item)}, nil
}

func (f *fakeDynamo) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.puts++
	f.items[storageKey(params.Item)] = copyItem(params.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.deletes++
	delete(f.items, storageKey(params.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	key := storageKey(params.Key)
	item, exists := f.items[key]

	switch aws.ToString(params.UpdateExpression) {
	case "SET #ctr = if_not_exists(#ctr, :zero) + :delta":
		f.updates++
		if !exists {
			item = copyItem(params.Key)
		}
		counterName := params.ExpressionAttributeNames["#ctr"]
		newValue := attrNumber(item[counterName]) + attrNumber(params.ExpressionAttributeValues[":delta"])
		item[counterName] = &types.AttributeValueMemberN{Value: strconv.FormatInt(newValue, 10)}
		f.items[key] = item
		return &dynamodb.UpdateItemOutput{
			Attributes: map[string]types.AttributeValue{
				counterName: &types.AttributeValueMemberN{Value: strconv.FormatInt(newValue, 10)},
			},
		}, nil

	case "SET #s = :ready, #pkey = :pkey, #pbucket = :pbucket":
		statusName := params.ExpressionAttributeNames["#s"]
		if aws.ToString(params.ConditionExpression) == "#s = :processing" {
			if !exists || attrString(item[statusName]) != attrString(params.ExpressionAttributeValues[":processing"]) {
				return nil, &types.ConditionalCheckFailedException{Message: aws.String("condition failed")}
			}
		}
		f.updates++
		item[statusName] = params.ExpressionAttributeValues[":ready"]
		item[params.ExpressionAttributeNames["#pkey"]] = params.ExpressionAttributeValues[":pkey"]
		item[params.ExpressionAttributeNames["#pbucket"]] = params.ExpressionAttributeValues[":pbucket"]
		f.items[key] = item
		return &dynamodb.UpdateItemOutput{}, nil
	}

	return nil, fmt.Errorf("fakeDynamo: unsupported update expression %q", aws.ToString(params.UpdateExpression))
}

func (f *fakeDynamo) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	if aws.ToString(params.KeyConditionExpression) != "PK = :pk AND begins_with(SK, :skPrefix)" {
		return nil, fmt.Errorf("fakeDynamo: unsupported key condition %q", aws.ToString(params.KeyConditionExpression))
	}
	pk := attrString(params.ExpressionAttributeValues[":pk"])
	prefix := attrString(params.ExpressionAttributeValues[":skPrefix"])

	var matched []map[string]types.AttributeValue
	for _, item := range f.items {
		if attrString(item["PK"]) == pk && strings.HasPrefix(attrString(item["SK"]), prefix) {
			matched = append(matched, copyItem(item))
		}
	}
	return &dynamodb.QueryOutput{Items: matched}, nil
}

func (f *fakeDynamo) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	var matched []map[string]types.AttributeValue
	for _, item := range f.items {
		keep := false
		switch aws.ToString(params.FilterExpression) {
		case "":
			keep = true
		case "begins_with(SK, :videoPrefix) AND #s = :ready":
			keep = strings.HasPrefix(attrString(item["SK"]), attrString(params.ExpressionAttributeValues[":videoPrefix"])) &&
				attrString(item[params.ExpressionAttributeNames["#s"]]) == attrString(params.ExpressionAttributeValues[":ready"])
		case "raw_key = :rawKey":
			keep = attrString(item["raw_key"]) == attrString(params.ExpressionAttributeValues[":rawKey"])
		default:
			return nil, fmt.Errorf("fakeDynamo: unsupported filter %q", aws.ToString(params.FilterExpression))
		}
		if keep {
			matched = append(matched, copyItem(item))
		}
	}
	return &dynamodb.ScanOutput{Items: matched}, nil
}
