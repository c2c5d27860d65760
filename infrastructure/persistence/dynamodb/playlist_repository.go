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

// PlaylistRepository implements ports.PlaylistRepository using DynamoDB
type PlaylistRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewPlaylistRepository creates a new PlaylistRepository
func NewPlaylistRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.PlaylistRepository {
	return &PlaylistRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// playlistRecord is the DynamoDB item structure for the training playlist
type playlistRecord struct {
	PK         string   `dynamodbav:"PK"`
	SK         string   `dynamodbav:"SK"`
	EntityType string   `dynamodbav:"EntityType"`
	TenantID   string   `dynamodbav:"TenantID"`
	ItemIDs    []string `dynamodbav:"ItemIDs"`
	UpdatedAt  string   `dynamodbav:"UpdatedAt"`
}

// Get retrieves the tenant's playlist; a tenant without one gets an empty
// playlist.
func (r *PlaylistRepository) Get(ctx context.Context, tenantID string) (menu.Playlist, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: tenantPK(tenantID)},
			"SK": &types.AttributeValueMemberS{Value: skPlaylist},
		},
	})
	if err != nil {
		return menu.Playlist{}, pkgerrors.NewDatabaseError("get playlist", err)
	}
	if result.Item == nil {
		return menu.Playlist{TenantID: tenantID, ItemIDs: []string{}}, nil
	}

	var record playlistRecord
	if err := attributevalue.UnmarshalMap(result.Item, &record); err != nil {
		return menu.Playlist{}, pkgerrors.NewDatabaseError("unmarshal playlist", err)
	}

	updatedAt, _ := time.Parse(time.RFC3339, record.UpdatedAt)
	playlist := menu.Playlist{TenantID: tenantID, ItemIDs: record.ItemIDs, UpdatedAt: updatedAt}
	if playlist.ItemIDs == nil {
		playlist.ItemIDs = []string{}
	}
	return playlist, nil
}

// Put replaces the tenant's playlist.
func (r *PlaylistRepository) Put(ctx context.Context, playlist menu.Playlist) error {
	record := playlistRecord{
		PK:         tenantPK(playlist.TenantID),
		SK:         skPlaylist,
		EntityType: entityTypePlaylist,
		TenantID:   playlist.TenantID,
		ItemIDs:    playlist.ItemIDs,
		UpdatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	av, err := attributevalue.MarshalMap(record)
	if err != nil {
		return pkgerrors.NewDatabaseError("marshal playlist", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		r.logger.Error("failed to save playlist",
			zap.String("tenantID", playlist.TenantID),
			zap.Error(err),
		)
		return pkgerrors.NewDatabaseError("save playlist", err)
	}
	return nil
}
