package dynamodb

import (
	"context"

	"mentra-backend/application/ports"
	"mentra-backend/domain/menu"
	pkgerrors "mentra-backend/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// MenuTransactions implements ports.MenuTransactions with
// TransactWriteItems. An item's own fields and its slot in the ordering
// document always land together: a cross-bucket move is never observable
// half-applied.
type MenuTransactions struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewMenuTransactions creates a new MenuTransactions
func NewMenuTransactions(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.MenuTransactions {
	return &MenuTransactions{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// SaveItemAndOrdering persists both records in one transaction.
func (t *MenuTransactions) SaveItemAndOrdering(ctx context.Context, item menu.Item, ord menu.Ordering) error {
	itemAV, err := attributevalue.MarshalMap(newItemRecord(item))
	if err != nil {
		return pkgerrors.NewDatabaseError("marshal item", err)
	}
	ordAV, err := attributevalue.MarshalMap(newOrderingRecord(item.TenantID, ord))
	if err != nil {
		return pkgerrors.NewDatabaseError("marshal ordering", err)
	}

	_, err = t.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{TableName: aws.String(t.tableName), Item: itemAV}},
			{Put: &types.Put{TableName: aws.String(t.tableName), Item: ordAV}},
		},
	})
	if err != nil {
		t.logger.Error("item+ordering transaction failed",
			zap.String("tenantID", item.TenantID),
			zap.String("itemID", item.ID),
			zap.Error(err),
		)
		return pkgerrors.NewDatabaseError("save item with ordering", err)
	}
	return nil
}

// DeleteItemAndOrdering removes the item and replaces the ordering in one
// transaction.
func (t *MenuTransactions) DeleteItemAndOrdering(ctx context.Context, tenantID, itemID string, ord menu.Ordering) error {
	ordAV, err := attributevalue.MarshalMap(newOrderingRecord(tenantID, ord))
	if err != nil {
		return pkgerrors.NewDatabaseError("marshal ordering", err)
	}

	_, err = t.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Delete: &types.Delete{
				TableName: aws.String(t.tableName),
				Key: map[string]types.AttributeValue{
					"PK": &types.AttributeValueMemberS{Value: tenantPK(tenantID)},
					"SK": &types.AttributeValueMemberS{Value: itemSK(itemID)},
				},
			}},
			{Put: &types.Put{TableName: aws.String(t.tableName), Item: ordAV}},
		},
	})
	if err != nil {
		t.logger.Error("delete+ordering transaction failed",
			zap.String("tenantID", tenantID),
			zap.String("itemID", itemID),
			zap.Error(err),
		)
		return pkgerrors.NewDatabaseError("delete item with ordering", err)
	}
	return nil
}
