package dynamodb

import (
	"context"
	"time"

	"mentra-backend/application/ports"
	"mentra-backend/domain/menu"
	pkgerrors "mentra-backend/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// OrderingRepository implements ports.OrderingRepository using DynamoDB.
// The whole document lives in one record per tenant and is replaced
// wholesale on every write.
type OrderingRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewOrderingRepository creates a new OrderingRepository
func NewOrderingRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.OrderingRepository {
	return &OrderingRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// orderingRecord is the DynamoDB item structure for the ordering document
type orderingRecord struct {
	PK               string              `dynamodbav:"PK"`
	SK               string              `dynamodbav:"SK"`
	EntityType       string              `dynamodbav:"EntityType"`
	TenantID         string              `dynamodbav:"TenantID"`
	CategoryOrder    []string            `dynamodbav:"CategoryOrder"`
	SubcategoryOrder map[string][]string `dynamodbav:"SubcategoryOrder"`
	ItemOrder        map[string][]string `dynamodbav:"ItemOrder"`
	UpdatedAt        string              `dynamodbav:"UpdatedAt"`
}

func newOrderingRecord(tenantID string, ord menu.Ordering) orderingRecord {
	return orderingRecord{
		PK:               tenantPK(tenantID),
		SK:               skOrdering,
		EntityType:       entityTypeOrdering,
		TenantID:         tenantID,
		CategoryOrder:    ord.CategoryOrder,
		SubcategoryOrder: ord.SubcategoryOrder,
		ItemOrder:        ord.ItemOrder,
		UpdatedAt:        time.Now().UTC().Format(time.RFC3339),
	}
}

func (r orderingRecord) toOrdering() menu.Ordering {
	ord := menu.Ordering{
		CategoryOrder:    r.CategoryOrder,
		SubcategoryOrder: r.SubcategoryOrder,
		ItemOrder:        r.ItemOrder,
	}
	if ord.SubcategoryOrder == nil {
		ord.SubcategoryOrder = map[string][]string{}
	}
	if ord.ItemOrder == nil {
		ord.ItemOrder = map[string][]string{}
	}
	return ord
}

// Get retrieves the tenant's ordering document. A tenant that has never
// persisted one gets an empty document.
func (r *OrderingRepository) Get(ctx context.Context, tenantID string) (menu.Ordering, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: tenantPK(tenantID)},
			"SK": &types.AttributeValueMemberS{Value: skOrdering},
		},
	})
	if err != nil {
		return menu.Ordering{}, pkgerrors.NewDatabaseError("get ordering", err)
	}
	if result.Item == nil {
		return menu.NewOrdering(), nil
	}

	var record orderingRecord
	if err := attributevalue.UnmarshalMap(result.Item, &record); err != nil {
		// A corrupt document degrades to the alphabetical defaults rather
		// than blocking every menu read.
		r.logger.Error("unreadable ordering record, falling back to empty",
			zap.String("tenantID", tenantID),
			zap.Error(err),
		)
		return menu.NewOrdering(), nil
	}
	return record.toOrdering(), nil
}

// Put replaces the tenant's ordering document.
func (r *OrderingRepository) Put(ctx context.Context, tenantID string, ord menu.Ordering) error {
	av, err := attributevalue.MarshalMap(newOrderingRecord(tenantID, ord))
	if err != nil {
		return pkgerrors.NewDatabaseError("marshal ordering", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		r.logger.Error("failed to save ordering",
			zap.String("tenantID", tenantID),
			zap.Error(err),
		)
		return pkgerrors.NewDatabaseError("save ordering", err)
	}
	return nil
}
