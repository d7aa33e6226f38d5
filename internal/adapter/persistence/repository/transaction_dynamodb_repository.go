package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"lumalens/internal/domain/entities"
	"lumalens/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTransactionsTableName = "transactions"

type transactionItem struct {
	ID        string `dynamodbav:"id"`
	UserID    string `dynamodbav:"user_id,omitempty"`
	PackageID string `dynamodbav:"package_id,omitempty"`
	Provider  string `dynamodbav:"provider,omitempty"`
	Status    string `dynamodbav:"status"`
	UpdatedAt string `dynamodbav:"updated_at"`
	ExpiresAt string `dynamodbav:"expires_at,omitempty"`
}

// TransactionDynamoRepository persists Transaction entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Table existence is a deployment-time precondition; the repository never
// issues DDL at request time.

type TransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb *dynamodb.Client) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *TransactionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Transaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.Transaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

// Upsert applies a status transition as a single conditional write.
//
// The condition allows the write when the row is new, when the stored status
// is non-terminal, or when the incoming status re-asserts the stored one
// (provider retry). Any other attempt — terminal to a different terminal,
// terminal back to PENDING — fails the condition, and the stored row is
// returned unchanged instead of an error so retries converge.
func (r *TransactionDynamoRepository) Upsert(ctx context.Context, tx entities.Transaction) (entities.Transaction, error) {
	updates := []string{
		"#st = :st",
		"#ua = :ua",
		"#uid = if_not_exists(#uid, :uid)",
		"#pkg = if_not_exists(#pkg, :pkg)",
		"#pv = if_not_exists(#pv, :pv)",
	}
	names := map[string]string{
		"#st":  "status",
		"#ua":  "updated_at",
		"#uid": "user_id",
		"#pkg": "package_id",
		"#pv":  "provider",
	}
	values := map[string]types.AttributeValue{
		":st":        &types.AttributeValueMemberS{Value: string(tx.Status)},
		":ua":        &types.AttributeValueMemberS{Value: tx.UpdatedAt.UTC().Format(time.RFC3339Nano)},
		":uid":       &types.AttributeValueMemberS{Value: tx.UserID},
		":pkg":       &types.AttributeValueMemberS{Value: tx.PackageID},
		":pv":        &types.AttributeValueMemberS{Value: tx.Provider},
		":completed": &types.AttributeValueMemberS{Value: string(entities.TransactionStatusCompleted)},
		":failed":    &types.AttributeValueMemberS{Value: string(entities.TransactionStatusFailed)},
	}
	if tx.ExpiresAt != nil {
		updates = append(updates, "#exp = if_not_exists(#exp, :exp)")
		names["#exp"] = "expires_at"
		values[":exp"] = &types.AttributeValueMemberS{Value: tx.ExpiresAt.UTC().Format(time.RFC3339Nano)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: tx.ID},
		},
		UpdateExpression:                    aws.String("SET " + strings.Join(updates, ", ")),
		ConditionExpression:                 aws.String("attribute_not_exists(#st) OR #st = :st OR (#st <> :completed AND #st <> :failed)"),
		ExpressionAttributeNames:            names,
		ExpressionAttributeValues:           values,
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			if len(ccf.Item) > 0 {
				var it transactionItem
				if uerr := attributevalue.UnmarshalMap(ccf.Item, &it); uerr != nil {
					return entities.Transaction{}, uerr
				}
				return fromTransactionItem(it), nil
			}
			return r.GetByID(ctx, tx.ID)
		}
		return entities.Transaction{}, err
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

func fromTransactionItem(it transactionItem) entities.Transaction {
	ua, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	tx := entities.Transaction{
		ID:        it.ID,
		UserID:    it.UserID,
		PackageID: it.PackageID,
		Provider:  it.Provider,
		Status:    entities.TransactionStatus(it.Status),
		UpdatedAt: ua,
	}
	if it.ExpiresAt != "" {
		if exp, err := time.Parse(time.RFC3339Nano, it.ExpiresAt); err == nil {
			tx.ExpiresAt = &exp
		}
	}
	return tx
}
