package repository

import (
	"context"
	"errors"
	"time"

	"traful_pagos/internal/domain/entities"
	"traful_pagos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProcessedPaymentsTableName = "processed_payments"

type processedPaymentItem struct {
	PaymentID   string `dynamodbav:"payment_id"`
	HistoryID   string `dynamodbav:"history_id,omitempty"`
	Status      string `dynamodbav:"status"`
	ProcessedAt string `dynamodbav:"processed_at"`
}

// DynamoDBAPI is the subset of the DynamoDB client used by the ledger.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// ProcessedPaymentDynamoRepository is the webhook de-duplication ledger.
//
// Table requirements:
//   - PK: payment_id (string)
type ProcessedPaymentDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IProcessedPaymentRepository = (*ProcessedPaymentDynamoRepository)(nil)

func NewProcessedPaymentDynamoRepository(ddb DynamoDBAPI, tableName string) *ProcessedPaymentDynamoRepository {
	if tableName == "" {
		tableName = defaultProcessedPaymentsTableName
	}
	return &ProcessedPaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ProcessedPaymentDynamoRepository) Create(ctx context.Context, p entities.ProcessedPayment) error {
	av, err := attributevalue.MarshalMap(toProcessedPaymentItem(p))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "payment_id",
		},
	})
	var conditionFailed *types.ConditionalCheckFailedException
	if errors.As(err, &conditionFailed) {
		return entities.ErrPaymentAlreadyProcessed
	}
	return err
}

func (r *ProcessedPaymentDynamoRepository) Get(ctx context.Context, paymentID string) (entities.ProcessedPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"payment_id": &types.AttributeValueMemberS{Value: paymentID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ProcessedPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.ProcessedPayment{}, nil
	}

	var it processedPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ProcessedPayment{}, err
	}
	return fromProcessedPaymentItem(it), nil
}

func toProcessedPaymentItem(p entities.ProcessedPayment) processedPaymentItem {
	at := p.ProcessedAt
	if at.IsZero() {
		at = time.Now()
	}
	return processedPaymentItem{
		PaymentID:   p.GatewayPaymentID,
		HistoryID:   p.HistoryID,
		Status:      string(p.Status),
		ProcessedAt: at.UTC().Format(time.RFC3339Nano),
	}
}

func fromProcessedPaymentItem(it processedPaymentItem) entities.ProcessedPayment {
	at, _ := time.Parse(time.RFC3339Nano, it.ProcessedAt)
	return entities.ProcessedPayment{
		GatewayPaymentID: it.PaymentID,
		HistoryID:        it.HistoryID,
		Status:           entities.HistoryStatus(it.Status),
		ProcessedAt:      at,
	}
}
