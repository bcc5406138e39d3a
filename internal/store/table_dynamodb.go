// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// KeyAttribute is the partition key attribute of every table.
const KeyAttribute = "id"

// dynamoTable is the DynamoDB-backed implementation of [Table].
type dynamoTable struct {
	client DynamoDBAPI
	name   string
}

// NewDynamoTable returns a [Table] for the named DynamoDB table.
func NewDynamoTable(client DynamoDBAPI, name string) Table {
	return &dynamoTable{client: client, name: name}
}

func (t *dynamoTable) Name() string {
	return t.name
}

func keyOf(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		KeyAttribute: &types.AttributeValueMemberS{Value: id},
	}
}

func (t *dynamoTable) GetByKey(ctx context.Context, id string, out any) (bool, error) {
	res, err := t.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(t.name),
		Key:       keyOf(id),
	})
	if err != nil {
		return false, classifyDynamoError(err, "get")
	}
	if len(res.Item) == 0 {
		return false, nil
	}

	if err = attributevalue.UnmarshalMap(res.Item, out); err != nil {
		return false, serializationError(err, "get")
	}
	return true, nil
}

func (t *dynamoTable) PutNew(ctx context.Context, record any) error {
	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return serializationError(err, "put")
	}

	_, err = t.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(t.name),
		Item:      item,
	})
	return classifyDynamoError(err, "put")
}

func (t *dynamoTable) QueryByIndex(ctx context.Context, indexName, attribute, value string, out any) error {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(t.name),
		IndexName:              aws.String(indexName),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attribute,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	}

	var items []map[string]types.AttributeValue
	pages := dynamodb.NewQueryPaginator(t.client, input)
	for pages.HasMorePages() {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return classifyDynamoError(err, "query")
		}
		items = append(items, page.Items...)
	}

	if err := attributevalue.UnmarshalListOfMaps(items, out); err != nil {
		return serializationError(err, "query")
	}
	return nil
}

func (t *dynamoTable) UpdateFields(ctx context.Context, id string, fields map[string]any, out any) (bool, error) {
	if len(fields) == 0 {
		return t.GetByKey(ctx, id, out)
	}

	expr, names, values, err := setExpression(fields)
	if err != nil {
		return false, serializationError(err, "update")
	}
	names["#pk"] = KeyAttribute

	res, err := t.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(t.name),
		Key:                       keyOf(id),
		UpdateExpression:          aws.String(expr),
		ConditionExpression:       aws.String("attribute_exists(#pk)"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return false, nil
		}
		return false, classifyDynamoError(err, "update")
	}
	if len(res.Attributes) == 0 {
		return false, nil
	}

	if err = attributevalue.UnmarshalMap(res.Attributes, out); err != nil {
		return false, serializationError(err, "update")
	}
	return true, nil
}

func (t *dynamoTable) DeleteByKey(ctx context.Context, id string) error {
	_, err := t.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(t.name),
		Key:       keyOf(id),
	})
	return classifyDynamoError(err, "delete")
}

// setExpression renders fields as "SET #f0 = :v0, #f1 = :v1" in sorted
// attribute order, with matching name and value placeholders.
func setExpression(fields map[string]any) (string, map[string]string, map[string]types.AttributeValue, error) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	names := make(map[string]string, len(keys)+1)
	values := make(map[string]types.AttributeValue, len(keys))
	expr := "SET "
	for i, k := range keys {
		av, err := attributevalue.Marshal(fields[k])
		if err != nil {
			return "", nil, nil, fmt.Errorf("attribute %q: %w", k, err)
		}
		name, value := fmt.Sprintf("#f%d", i), fmt.Sprintf(":v%d", i)
		names[name] = k
		values[value] = av
		if i > 0 {
			expr += ", "
		}
		expr += name + " = " + value
	}

	return expr, names, values, nil
}
