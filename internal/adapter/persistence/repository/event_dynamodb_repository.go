package repository

import (
	"context"
	"time"

	"lumalens/internal/domain/entities"
	"lumalens/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultEventsTableName = "events"

type analyticsEventItem struct {
	ID         string                 `dynamodbav:"id"`
	Type       string                 `dynamodbav:"type"`
	Attributes map[string]interface{} `dynamodbav:"attributes,omitempty"`
	Timestamp  string                 `dynamodbav:"timestamp"`
}

// EventDynamoRepository appends analytics events to DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Events are write-only from this service; there is no read path.

type EventDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEventSink = (*EventDynamoRepository)(nil)

func NewEventDynamoRepository(ddb *dynamodb.Client) *EventDynamoRepository {
	return &EventDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EVENTS_TABLE", defaultEventsTableName),
	}
}

func (r *EventDynamoRepository) Append(ctx context.Context, event entities.AnalyticsEvent) error {
	it := analyticsEventItem{
		ID:         event.ID,
		Type:       event.Type,
		Attributes: event.Attributes,
		Timestamp:  event.Timestamp.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
