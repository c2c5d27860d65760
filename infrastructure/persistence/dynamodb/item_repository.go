package dynamodb

import (
	"context"
	"errors"
	"time"

	"mentra-backend/application/ports"
	"mentra-backend/domain/menu"
	pkgerrors "mentra-backend/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// ItemRepository implements ports.ItemRepository using DynamoDB
type ItemRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.ItemRepository {
	return &ItemRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// itemRecord is the DynamoDB item structure for a menu item
type itemRecord struct {
	PK          string   `dynamodbav:"PK"`
	SK          string   `dynamodbav:"SK"`
	GSI1PK      string   `dynamodbav:"GSI1PK"`
	GSI1SK      string   `dynamodbav:"GSI1SK"`
	EntityType  string   `dynamodbav:"EntityType"`
	ItemID      string   `dynamodbav:"ItemID"`
	TenantID    string   `dynamodbav:"TenantID"`
	Title       string   `dynamodbav:"Title"`
	Category    string   `dynamodbav:"Category"`
	Subcategory string   `dynamodbav:"Subcategory,omitempty"`
	Description string   `dynamodbav:"Description,omitempty"`
	VideoURL    string   `dynamodbav:"VideoURL,omitempty"`
	Steps       []string `dynamodbav:"Steps,omitempty"`
	CreatedAt   string   `dynamodbav:"CreatedAt"`
	UpdatedAt   string   `dynamodbav:"UpdatedAt"`
}

func newItemRecord(item menu.Item) itemRecord {
	return itemRecord{
		PK:          tenantPK(item.TenantID),
		SK:          itemSK(item.ID),
		GSI1PK:      itemGSI1PK(item.ID),
		GSI1SK:      gsi1MetadataSK,
		EntityType:  entityTypeItem,
		ItemID:      item.ID,
		TenantID:    item.TenantID,
		Title:       item.Title,
		Category:    item.Category,
		Subcategory: item.Subcategory,
		Description: item.Description,
		VideoURL:    item.VideoURL,
		Steps:       item.Steps,
		CreatedAt:   item.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   item.UpdatedAt.Format(time.RFC3339),
	}
}

func (r itemRecord) toItem() menu.Item {
	createdAt, _ := time.Parse(time.RFC3339, r.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339, r.UpdatedAt)
	return menu.Item{
		ID:          r.ItemID,
		TenantID:    r.TenantID,
		Title:       r.Title,
		Category:    r.Category,
		Subcategory: r.Subcategory,
		Description: r.Description,
		VideoURL:    r.VideoURL,
		Steps:       r.Steps,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// Save persists an item (create or update)
func (r *ItemRepository) Save(ctx context.Context, item menu.Item) error {
	av, err := attributevalue.MarshalMap(newItemRecord(item))
	if err != nil {
		return pkgerrors.NewDatabaseError("marshal item", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		r.logger.Error("failed to save item",
			zap.String("tenantID", item.TenantID),
			zap.String("itemID", item.ID),
			zap.Error(err),
		)
		return pkgerrors.NewDatabaseError("save item", err)
	}
	return nil
}

// GetByID retrieves one item within a tenant
func (r *ItemRepository) GetByID(ctx context.Context, tenantID, itemID string) (menu.Item, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: tenantPK(tenantID)},
			"SK": &types.AttributeValueMemberS{Value: itemSK(itemID)},
		},
	})
	if err != nil {
		return menu.Item{}, pkgerrors.NewDatabaseError("get item", err)
	}
	if result.Item == nil {
		return menu.Item{}, pkgerrors.NewNotFoundError("item")
	}

	var record itemRecord
	if err := attributevalue.UnmarshalMap(result.Item, &record); err != nil {
		return menu.Item{}, pkgerrors.NewDatabaseError("unmarshal item", err)
	}
	return record.toItem(), nil
}

// ListByTenant retrieves every item of a tenant
func (r *ItemRepository) ListByTenant(ctx context.Context, tenantID string) ([]menu.Item, error) {
	keyCond := expression.Key("PK").Equal(expression.Value(tenantPK(tenantID))).
		And(expression.Key("SK").BeginsWith(skItemPrefix))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("build item query", err)
	}

	items := []menu.Item{}
	var lastKey map[string]types.AttributeValue
	for {
		result, err := r.client.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			KeyConditionExpression:    expr.KeyCondition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         lastKey,
		})
		if err != nil {
			return nil, pkgerrors.NewDatabaseError("query items", err)
		}

		for _, raw := range result.Items {
			var record itemRecord
			if err := attributevalue.UnmarshalMap(raw, &record); err != nil {
				r.logger.Warn("skipping unreadable item record",
					zap.String("tenantID", tenantID),
					zap.Error(err),
				)
				continue
			}
			items = append(items, record.toItem())
		}

		lastKey = result.LastEvaluatedKey
		if lastKey == nil {
			break
		}
	}
	return items, nil
}

// Delete removes an item
func (r *ItemRepository) Delete(ctx context.Context, tenantID, itemID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: tenantPK(tenantID)},
			"SK": &types.AttributeValueMemberS{Value: itemSK(itemID)},
		},
		ConditionExpression: aws.String("attribute_exists(PK)"),
	})
	if err != nil {
		var condFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condFailed) {
			return pkgerrors.NewNotFoundError("item")
		}
		return pkgerrors.NewDatabaseError("delete item", err)
	}
	return nil
}
