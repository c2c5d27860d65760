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

// ProgressRepository implements ports.ProgressRepository using DynamoDB.
// One record per tenant+user pair.
type ProgressRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewProgressRepository creates a new ProgressRepository
func NewProgressRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.ProgressRepository {
	return &ProgressRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// progressRecord is the DynamoDB item structure for a progress record
type progressRecord struct {
	PK           string         `dynamodbav:"PK"`
	SK           string         `dynamodbav:"SK"`
	EntityType   string         `dynamodbav:"EntityType"`
	TenantID     string         `dynamodbav:"TenantID"`
	UserID       string         `dynamodbav:"UserID"`
	CompletedIDs []string       `dynamodbav:"CompletedIDs"`
	StepPosition map[string]int `dynamodbav:"StepPosition,omitempty"`
	UpdatedAt    string         `dynamodbav:"UpdatedAt"`
}

// Get retrieves one user's progress; a user without a record gets an
// empty one.
func (r *ProgressRepository) Get(ctx context.Context, tenantID, userID string) (menu.Progress, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: tenantPK(tenantID)},
			"SK": &types.AttributeValueMemberS{Value: progressSK(userID)},
		},
	})
	if err != nil {
		return menu.Progress{}, pkgerrors.NewDatabaseError("get progress", err)
	}
	if result.Item == nil {
		return menu.Progress{TenantID: tenantID, UserID: userID, CompletedIDs: []string{}}, nil
	}

	var record progressRecord
	if err := attributevalue.UnmarshalMap(result.Item, &record); err != nil {
		return menu.Progress{}, pkgerrors.NewDatabaseError("unmarshal progress", err)
	}

	updatedAt, _ := time.Parse(time.RFC3339, record.UpdatedAt)
	progress := menu.Progress{
		TenantID:     tenantID,
		UserID:       userID,
		CompletedIDs: record.CompletedIDs,
		StepPosition: record.StepPosition,
		UpdatedAt:    updatedAt,
	}
	if progress.CompletedIDs == nil {
		progress.CompletedIDs = []string{}
	}
	return progress, nil
}

// Put replaces one user's progress record.
func (r *ProgressRepository) Put(ctx context.Context, progress menu.Progress) error {
	record := progressRecord{
		PK:           tenantPK(progress.TenantID),
		SK:           progressSK(progress.UserID),
		EntityType:   entityTypeProgress,
		TenantID:     progress.TenantID,
		UserID:       progress.UserID,
		CompletedIDs: progress.CompletedIDs,
		StepPosition: progress.StepPosition,
		UpdatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	av, err := attributevalue.MarshalMap(record)
	if err != nil {
		return pkgerrors.NewDatabaseError("marshal progress", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		r.logger.Error("failed to save progress",
			zap.String("tenantID", progress.TenantID),
			zap.String("userID", progress.UserID),
			zap.Error(err),
		)
		return pkgerrors.NewDatabaseError("save progress", err)
	}
	return nil
}
