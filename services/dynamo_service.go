package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the subset of the DynamoDB client the adapter uses. Tests
// substitute an in-memory implementation.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// DynamoService wraps every access to the single CloudStream table. All rows
// share one (PK, SK) composite key; the higher-level services never touch the
// DynamoDB client directly.
type DynamoService struct {
	Client DynamoAPI
	Table  string
}

// InitializeDynamoDBClient initializes the DynamoDB client
func InitializeDynamoDBClient() *dynamodb.Client {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

func itemKey(pk, sk string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: pk},
		"SK": &types.AttributeValueMemberS{Value: sk},
	}
}

// GetItem fetches one row by its composite key. A missing row returns
// (nil, nil): absence is how relationship and reaction state is encoded, so
// it is a designed default rather than an error.
func (ds *DynamoService) GetItem(ctx context.Context, pk, sk string) (map[string]types.AttributeValue, error) {
	output, err := ds.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(ds.Table),
		Key:       itemKey(pk, sk),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get item %s/%s: %w", pk, sk, err)
	}
	if len(output.Item) == 0 {
		return nil, nil
	}
	return output.Item, nil
}

// PutItem marshals and writes a full row, overwriting any existing one.
func (ds *DynamoService) PutItem(ctx context.Context, item interface{}) error {
	marshaledItem, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}
	_, err = ds.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(ds.Table),
		Item:      marshaledItem,
	})
	if err != nil {
		return fmt.Errorf("failed to put item in table '%s': %w", ds.Table, err)
	}
	return nil
}

// DeleteItem removes one row. Deleting an absent row is not an error.
func (ds *DynamoService) DeleteItem(ctx context.Context, pk, sk string) error {
	_, err := ds.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(ds.Table),
		Key:       itemKey(pk, sk),
	})
	if err != nil {
		return fmt.Errorf("failed to delete item %s/%s: %w", pk, sk, err)
	}
	return nil
}

// UpdateCounter applies one signed delta to a numeric attribute as a single
// atomic update, initializing the counter to zero if it does not exist yet.
// It must stay a single UpdateItem call: a read-then-write here would
// reintroduce the lost-update problem the expression avoids. Returns the new
// counter value.
func (ds *DynamoService) UpdateCounter(ctx context.Context, pk, sk, counterName string, delta int64) (int64, error) {
	output, err := ds.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(ds.Table),
		Key:              itemKey(pk, sk),
		UpdateExpression: aws.String("SET #ctr = if_not_exists(#ctr, :zero) + :delta"),
		ExpressionAttributeNames: map[string]string{
			"#ctr": counterName,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":zero":  &types.AttributeValueMemberN{Value: "0"},
			":delta": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", delta)},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to update counter %s on %s/%s: %w", counterName, pk, sk, err)
	}

	var newValue int64
	if attr, ok := output.Attributes[counterName]; ok {
		if err := attributevalue.Unmarshal(attr, &newValue); err != nil {
			return 0, fmt.Errorf("failed to read updated counter %s: %w", counterName, err)
		}
	}
	return newValue, nil
}

// UpdateItemExpr runs an arbitrary update expression against one row, with an
// optional condition expression. Used by the processing pipeline for the
// one-way PROCESSING -> READY flip.
func (ds *DynamoService) UpdateItemExpr(
	ctx context.Context,
	pk, sk string,
	updateExpression string,
	conditionExpression string,
	expressionAttributeNames map[string]string,
	expressionAttributeValues map[string]types.AttributeValue,
) error {
	input := &dynamodb.UpdateItemInput{
		TableName:                 aws.String(ds.Table),
		Key:                       itemKey(pk, sk),
		UpdateExpression:          aws.String(updateExpression),
		ExpressionAttributeNames:  expressionAttributeNames,
		ExpressionAttributeValues: expressionAttributeValues,
	}
	if conditionExpression != "" {
		input.ConditionExpression = aws.String(conditionExpression)
	}
	if _, err := ds.Client.UpdateItem(ctx, input); err != nil {
		return fmt.Errorf("failed to update item %s/%s: %w", pk, sk, err)
	}
	return nil
}

// IsConditionalCheckFailed reports whether err is a failed DynamoDB condition
// expression, unwrapping through the adapter's error wrapping.
func IsConditionalCheckFailed(err error) bool {
	var conditionErr *types.ConditionalCheckFailedException
	return errors.As(err, &conditionErr)
}

// QueryByPrefix returns every row in a partition whose sort key begins with
// the given prefix. Result order is not part of the contract; callers sort.
func (ds *DynamoService) QueryByPrefix(ctx context.Context, pk, skPrefix string) ([]map[string]types.AttributeValue, error) {
	output, err := ds.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(ds.Table),
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :skPrefix)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":       &types.AttributeValueMemberS{Value: pk},
			":skPrefix": &types.AttributeValueMemberS{Value: skPrefix},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query prefix %s/%s*: %w", pk, skPrefix, err)
	}
	return output.Items, nil
}

// ScanAll runs a full-table scan with an optional filter expression. Slow on
// big tables; the table is assumed small and the adapter does not try to
// optimize around that.
func (ds *DynamoService) ScanAll(
	ctx context.Context,
	filterExpression string,
	expressionAttributeNames map[string]string,
	expressionAttributeValues map[string]types.AttributeValue,
) ([]map[string]types.AttributeValue, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(ds.Table),
	}
	if filterExpression != "" {
		input.FilterExpression = aws.String(filterExpression)
		input.ExpressionAttributeNames = expressionAttributeNames
		input.ExpressionAttributeValues = expressionAttributeValues
	}

	var items []map[string]types.AttributeValue
	for {
		output, err := ds.Client.Scan(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to scan table '%s': %w", ds.Table, err)
		}
		items = append(items, output.Items...)
		if len(output.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = output.LastEvaluatedKey
	}
	return items, nil
}
