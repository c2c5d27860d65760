package di

import (
	"context"
	"fmt"

	"mentra-backend/application/commands"
	commandbus "mentra-backend/application/commands/bus"
	"mentra-backend/application/ports"
	"mentra-backend/application/queries"
	querybus "mentra-backend/application/queries/bus"
	queryhandlers "mentra-backend/application/queries/handlers"
	"mentra-backend/infrastructure/config"
	"mentra-backend/infrastructure/messaging/eventbridge"
	dynamorepo "mentra-backend/infrastructure/persistence/dynamodb"
	"mentra-backend/pkg/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideItemRepository creates an item repository
func ProvideItemRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.ItemRepository {
	return dynamorepo.NewItemRepository(client, cfg.DynamoDBTable, logger)
}

// ProvideOrderingRepository creates an ordering repository
func ProvideOrderingRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.OrderingRepository {
	return dynamorepo.NewOrderingRepository(client, cfg.DynamoDBTable, logger)
}

// ProvidePlaylistRepository creates a playlist repository
func ProvidePlaylistRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.PlaylistRepository {
	return dynamorepo.NewPlaylistRepository(client, cfg.DynamoDBTable, logger)
}

// ProvideProgressRepository creates a progress repository
func ProvideProgressRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.ProgressRepository {
	return dynamorepo.NewProgressRepository(client, cfg.DynamoDBTable, logger)
}

// ProvideMenuTransactions creates the transactional writer
func ProvideMenuTransactions(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.MenuTransactions {
	return dynamorepo.NewMenuTransactions(client, cfg.DynamoDBTable, logger)
}

// ProvideEventBus creates the event publisher. Development environments
// without a bus get a no-op publisher.
func ProvideEventBus(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.EventBus {
	if cfg.EventBusName == "" {
		return eventbridge.NewNopPublisher()
	}
	return eventbridge.NewPublisher(client, cfg.EventBusName, logger)
}

// ProvideMetrics creates the CloudWatch metrics publisher
func ProvideMetrics(client *awscloudwatch.Client, cfg *config.Config, logger *zap.Logger) *observability.Metrics {
	if !cfg.EnableMetrics {
		return observability.NewMetrics(nil, cfg.MetricsNamespace, logger)
	}
	return observability.NewMetrics(client, cfg.MetricsNamespace, logger)
}

// ProvideTracer creates the X-Ray tracer
func ProvideTracer() *observability.Tracer {
	return observability.NewTracer("mentra-backend")
}

// ProvideCommandBus creates the command bus with every handler registered
func ProvideCommandBus(
	itemRepo ports.ItemRepository,
	orderingRepo ports.OrderingRepository,
	playlistRepo ports.PlaylistRepository,
	progressRepo ports.ProgressRepository,
	transactions ports.MenuTransactions,
	eventBus ports.EventBus,
	cache ports.Cache,
	logger *zap.Logger,
) (*commandbus.CommandBus, error) {
	cb := commandbus.NewCommandBus()

	upsert := commands.NewUpsertItemHandler(itemRepo, orderingRepo, transactions, eventBus, cache, logger)
	if err := cb.Register(commands.UpsertItemCommand{}, commandbus.CommandHandlerFunc(func(ctx context.Context, cmd commandbus.Command) error {
		c, ok := cmd.(commands.UpsertItemCommand)
		if !ok {
			return fmt.Errorf("unexpected command type %T", cmd)
		}
		return upsert.Handle(ctx, c)
	})); err != nil {
		return nil, err
	}

	del := commands.NewDeleteItemHandler(itemRepo, orderingRepo, playlistRepo, transactions, eventBus, cache, logger)
	if err := cb.Register(commands.DeleteItemCommand{}, commandbus.CommandHandlerFunc(func(ctx context.Context, cmd commandbus.Command) error {
		c, ok := cmd.(commands.DeleteItemCommand)
		if !ok {
			return fmt.Errorf("unexpected command type %T", cmd)
		}
		return del.Handle(ctx, c)
	})); err != nil {
		return nil, err
	}

	move := commands.NewMoveEntryHandler(itemRepo, orderingRepo, transactions, eventBus, cache, logger)
	if err := cb.Register(commands.MoveEntryCommand{}, commandbus.CommandHandlerFunc(func(ctx context.Context, cmd commandbus.Command) error {
		c, ok := cmd.(commands.MoveEntryCommand)
		if !ok {
			return fmt.Errorf("unexpected command type %T", cmd)
		}
		return move.Handle(ctx, c)
	})); err != nil {
		return nil, err
	}

	saveOrd := commands.NewSaveOrderingHandler(itemRepo, orderingRepo, eventBus, cache, logger)
	if err := cb.Register(commands.SaveOrderingCommand{}, commandbus.CommandHandlerFunc(func(ctx context.Context, cmd commandbus.Command) error {
		c, ok := cmd.(commands.SaveOrderingCommand)
		if !ok {
			return fmt.Errorf("unexpected command type %T", cmd)
		}
		return saveOrd.Handle(ctx, c)
	})); err != nil {
		return nil, err
	}

	playlist := commands.NewUpdatePlaylistHandler(itemRepo, playlistRepo, eventBus, logger)
	if err := cb.Register(commands.UpdatePlaylistCommand{}, commandbus.CommandHandlerFunc(func(ctx context.Context, cmd commandbus.Command) error {
		c, ok := cmd.(commands.UpdatePlaylistCommand)
		if !ok {
			return fmt.Errorf("unexpected command type %T", cmd)
		}
		return playlist.Handle(ctx, c)
	})); err != nil {
		return nil, err
	}

	progress := commands.NewSaveProgressHandler(itemRepo, progressRepo, logger)
	if err := cb.Register(commands.SaveProgressCommand{}, commandbus.CommandHandlerFunc(func(ctx context.Context, cmd commandbus.Command) error {
		c, ok := cmd.(commands.SaveProgressCommand)
		if !ok {
			return fmt.Errorf("unexpected command type %T", cmd)
		}
		return progress.Handle(ctx, c)
	})); err != nil {
		return nil, err
	}

	return cb, nil
}

// ProvideQueryBus creates the query bus with every handler registered
func ProvideQueryBus(
	itemRepo ports.ItemRepository,
	orderingRepo ports.OrderingRepository,
	playlistRepo ports.PlaylistRepository,
	progressRepo ports.ProgressRepository,
	eventBus ports.EventBus,
	cache ports.Cache,
	metrics *observability.Metrics,
	tracer *observability.Tracer,
	logger *zap.Logger,
) (*querybus.QueryBus, error) {
	qb := querybus.NewQueryBus()

	getMenu := queryhandlers.NewGetMenuHandler(itemRepo, orderingRepo, eventBus, cache, metrics, tracer, logger)
	if err := qb.Register(queries.GetMenuQuery{}, querybus.QueryHandlerFunc(func(ctx context.Context, q querybus.Query) (interface{}, error) {
		query, ok := q.(queries.GetMenuQuery)
		if !ok {
			return nil, fmt.Errorf("unexpected query type %T", q)
		}
		return getMenu.Handle(ctx, query)
	})); err != nil {
		return nil, err
	}

	getItem := queryhandlers.NewGetItemHandler(itemRepo)
	if err := qb.Register(queries.GetItemQuery{}, querybus.QueryHandlerFunc(func(ctx context.Context, q querybus.Query) (interface{}, error) {
		query, ok := q.(queries.GetItemQuery)
		if !ok {
			return nil, fmt.Errorf("unexpected query type %T", q)
		}
		return getItem.Handle(ctx, query)
	})); err != nil {
		return nil, err
	}

	listItems := queryhandlers.NewListItemsHandler(itemRepo)
	if err := qb.Register(queries.ListItemsQuery{}, querybus.QueryHandlerFunc(func(ctx context.Context, q querybus.Query) (interface{}, error) {
		query, ok := q.(queries.ListItemsQuery)
		if !ok {
			return nil, fmt.Errorf("unexpected query type %T", q)
		}
		return listItems.Handle(ctx, query)
	})); err != nil {
		return nil, err
	}

	getPlaylist := queryhandlers.NewGetPlaylistHandler(itemRepo, playlistRepo, logger)
	if err := qb.Register(queries.GetPlaylistQuery{}, querybus.QueryHandlerFunc(func(ctx context.Context, q querybus.Query) (interface{}, error) {
		query, ok := q.(queries.GetPlaylistQuery)
		if !ok {
			return nil, fmt.Errorf("unexpected query type %T", q)
		}
		return getPlaylist.Handle(ctx, query)
	})); err != nil {
		return nil, err
	}

	getProgress := queryhandlers.NewGetProgressHandler(progressRepo)
	if err := qb.Register(queries.GetProgressQuery{}, querybus.QueryHandlerFunc(func(ctx context.Context, q querybus.Query) (interface{}, error) {
		query, ok := q.(queries.GetProgressQuery)
		if !ok {
			return nil, fmt.Errorf("unexpected query type %T", q)
		}
		return getProgress.Handle(ctx, query)
	})); err != nil {
		return nil, err
	}

	return qb, nil
}
