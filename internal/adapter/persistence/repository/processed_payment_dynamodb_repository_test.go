package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"traful_pagos/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeDynamo struct {
	items map[string]map[string]types.AttributeValue
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	id := in.Item["payment_id"].(*types.AttributeValueMemberS).Value
	if _, ok := f.items[id]; ok && in.ConditionExpression != nil {
		return nil, &types.ConditionalCheckFailedException{}
	}
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	id := in.Key["payment_id"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[id]}, nil
}

func TestProcessedPaymentDynamoRepository_CreateAndGet(t *testing.T) {
	repo := NewProcessedPaymentDynamoRepository(&fakeDynamo{items: map[string]map[string]types.AttributeValue{}}, "")
	ctx := context.Background()

	p := entities.ProcessedPayment{
		GatewayPaymentID: "123",
		HistoryID:        "recH",
		Status:           entities.HistoryStatusExitoso,
		ProcessedAt:      time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Create(ctx, p); !errors.Is(err, entities.ErrPaymentAlreadyProcessed) {
		t.Fatalf("expected ErrPaymentAlreadyProcessed, got %v", err)
	}

	got, err := repo.Get(ctx, "123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.GatewayPaymentID != p.GatewayPaymentID || got.HistoryID != p.HistoryID || got.Status != p.Status || !got.ProcessedAt.Equal(p.ProcessedAt) {
		t.Fatalf("unexpected record: %+v", got)
	}

	missing, err := repo.Get(ctx, "999")
	if err != nil || missing.GatewayPaymentID != "" {
		t.Fatalf("expected zero value, got %+v err=%v", missing, err)
	}
}

func TestToProcessedPaymentItem_DefaultsTimestamp(t *testing.T) {
	it := toProcessedPaymentItem(entities.ProcessedPayment{GatewayPaymentID: "1"})
	if it.ProcessedAt == "" {
		t.Fatalf("expected timestamp")
	}
	if _, err := attributevalue.MarshalMap(it); err != nil {
		t.Fatalf("marshal: %v", err)
	}
}
