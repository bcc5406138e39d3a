// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// memoryTable is an in-process [Table] for local development and tests.
//
// Records are stored in their attribute-value form, so they go through the
// same codec as the DynamoDB table. Index queries match on any top-level
// string attribute; the index name is accepted but not checked.
type memoryTable struct {
	mu      sync.RWMutex
	name    string
	records map[string]map[string]types.AttributeValue
	order   []string
}

// NewMemoryTable returns an empty in-memory [Table].
func NewMemoryTable(name string) Table {
	return &memoryTable{
		name:    name,
		records: make(map[string]map[string]types.AttributeValue),
	}
}

func (t *memoryTable) Name() string {
	return t.name
}

func (t *memoryTable) GetByKey(ctx context.Context, id string, out any) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, classifyDynamoError(err, "get")
	}

	t.mu.RLock()
	record, ok := t.records[id]
	t.mu.RUnlock()
	if !ok {
		return false, nil
	}

	if err := attributevalue.UnmarshalMap(record, out); err != nil {
		return false, serializationError(err, "get")
	}
	return true, nil
}

func (t *memoryTable) PutNew(ctx context.Context, record any) error {
	if err := ctx.Err(); err != nil {
		return classifyDynamoError(err, "put")
	}

	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return serializationError(err, "put")
	}
	id, ok := item[KeyAttribute].(*types.AttributeValueMemberS)
	if !ok || id.Value == "" {
		return &StoreError{
			Op:      "put",
			Code:    "ValidationException",
			Message: fmt.Sprintf("missing string key attribute %q", KeyAttribute),
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.records[id.Value]; !exists {
		t.order = append(t.order, id.Value)
	}
	t.records[id.Value] = item
	return nil
}

func (t *memoryTable) QueryByIndex(ctx context.Context, _, attribute, value string, out any) error {
	if err := ctx.Err(); err != nil {
		return classifyDynamoError(err, "query")
	}

	t.mu.RLock()
	var items []map[string]types.AttributeValue
	for _, id := range t.order {
		record := t.records[id]
		if s, ok := record[attribute].(*types.AttributeValueMemberS); ok && s.Value == value {
			items = append(items, maps.Clone(record))
		}
	}
	t.mu.RUnlock()

	if err := attributevalue.UnmarshalListOfMaps(items, out); err != nil {
		return serializationError(err, "query")
	}
	return nil
}

func (t *memoryTable) UpdateFields(ctx context.Context, id string, fields map[string]any, out any) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, classifyDynamoError(err, "update")
	}

	updates := make(map[string]types.AttributeValue, len(fields))
	for k, v := range fields {
		av, err := attributevalue.Marshal(v)
		if err != nil {
			return false, serializationError(fmt.Errorf("attribute %q: %w", k, err), "update")
		}
		updates[k] = av
	}

	t.mu.Lock()
	record, ok := t.records[id]
	if !ok {
		t.mu.Unlock()
		return false, nil
	}
	updated := maps.Clone(record)
	maps.Copy(updated, updates)
	t.records[id] = updated
	t.mu.Unlock()

	if err := attributevalue.UnmarshalMap(updated, out); err != nil {
		return false, serializationError(err, "update")
	}
	return true, nil
}

func (t *memoryTable) DeleteByKey(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return classifyDynamoError(err, "delete")
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.records[id]; !ok {
		return nil
	}
	delete(t.records, id)
	for i, key := range t.order {
		if key == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return nil
}
