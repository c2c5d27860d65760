// Package main implements the WebSocket notification Lambda. It consumes
// menu domain events from EventBridge and pushes them to every WebSocket
// client of the affected tenant so open menu views refresh live.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi"
	apigwTypes "github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi/types"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var (
	awsCfg       aws.Config
	dynamoClient *dynamodb.Client
)

// tenantConnection pairs a connection id with the management endpoint it
// was established against.
type tenantConnection struct {
	ConnectionID string
	Endpoint     string
}

// clientMessage is the frame pushed to WebSocket clients
type clientMessage struct {
	Type      string                 `json:"type"`
	Timestamp int64                  `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
}

func connectionsTable() string {
	if name := os.Getenv("CONNECTIONS_TABLE"); name != "" {
		return name
	}
	return "mentra-connections"
}

func init() {
	var err error
	awsCfg, err = config.LoadDefaultConfig(context.Background())
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	dynamoClient = dynamodb.NewFromConfig(awsCfg)

	log.Println("WebSocket notify handler initialized")
}

func managementClient(endpoint string) *apigatewaymanagementapi.Client {
	return apigatewaymanagementapi.NewFromConfig(awsCfg, func(o *apigatewaymanagementapi.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s", endpoint))
	})
}

// connectionsForTenant queries the tenant index for live connections
func connectionsForTenant(ctx context.Context, tenantID string) ([]tenantConnection, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(connectionsTable()),
		IndexName:              aws.String("TenantIndex"),
		KeyConditionExpression: aws.String("GSI1PK = :tenantpk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tenantpk": &types.AttributeValueMemberS{Value: fmt.Sprintf("TENANT#%s", tenantID)},
		},
	}

	result, err := dynamoClient.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query connections: %w", err)
	}

	var connections []tenantConnection
	for _, item := range result.Items {
		connID, _ := item["ConnectionID"].(*types.AttributeValueMemberS)
		endpoint, _ := item["Endpoint"].(*types.AttributeValueMemberS)
		if connID != nil && endpoint != nil {
			connections = append(connections, tenantConnection{
				ConnectionID: connID.Value,
				Endpoint:     endpoint.Value,
			})
		}
	}
	return connections, nil
}

func removeStaleConnection(ctx context.Context, connectionID string) {
	_, err := dynamoClient.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(connectionsTable()),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: fmt.Sprintf("CONNECTION#%s", connectionID)},
			"SK": &types.AttributeValueMemberS{Value: "METADATA"},
		},
	})
	if err != nil {
		log.Printf("Failed to remove stale connection %s: %v", connectionID, err)
	} else {
		log.Printf("Removed stale connection %s", connectionID)
	}
}

func pushToConnection(ctx context.Context, client *apigatewaymanagementapi.Client, connectionID string, message []byte) error {
	_, err := client.PostToConnection(ctx, &apigatewaymanagementapi.PostToConnectionInput{
		ConnectionId: aws.String(connectionID),
		Data:         message,
	})
	if err != nil {
		var gone *apigwTypes.GoneException
		if errors.As(err, &gone) {
			removeStaleConnection(ctx, connectionID)
			return nil
		}
		return fmt.Errorf("failed to post to connection: %w", err)
	}
	return nil
}

// notifyTenant fans one domain event out to every connection of a tenant
func notifyTenant(ctx context.Context, tenantID, eventType string, payload map[string]interface{}) error {
	connections, err := connectionsForTenant(ctx, tenantID)
	if err != nil {
		return err
	}
	if len(connections) == 0 {
		return nil
	}

	frame, err := json.Marshal(clientMessage{
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		Data:      payload,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	// Connections of one tenant may span endpoints during a stage cutover
	clients := make(map[string]*apigatewaymanagementapi.Client)
	successCount, failCount := 0, 0
	for _, conn := range connections {
		client, ok := clients[conn.Endpoint]
		if !ok {
			client = managementClient(conn.Endpoint)
			clients[conn.Endpoint] = client
		}
		if err := pushToConnection(ctx, client, conn.ConnectionID, frame); err != nil {
			log.Printf("Failed to push to connection %s: %v", conn.ConnectionID, err)
			failCount++
		} else {
			successCount++
		}
	}

	log.Printf("Notified tenant %s: %d delivered, %d failed", tenantID, successCount, failCount)
	if failCount > 0 && successCount == 0 {
		return fmt.Errorf("all pushes failed for tenant %s", tenantID)
	}
	return nil
}

// handler consumes EventBridge domain events published by the API
func handler(ctx context.Context, event events.CloudWatchEvent) error {
	var payload map[string]interface{}
	if err := json.Unmarshal(event.Detail, &payload); err != nil {
		return fmt.Errorf("failed to parse event detail: %w", err)
	}

	tenantID, _ := payload["tenant_id"].(string)
	if tenantID == "" {
		log.Printf("Event %s carries no tenant, dropping", event.DetailType)
		return nil
	}

	return notifyTenant(ctx, tenantID, event.DetailType, payload)
}

func main() {
	lambda.Start(handler)
}
