package di

import (
	"context"
	"fmt"

	"sysmap-backend/application/commands"
	"sysmap-backend/application/commands/bus"
	commandhandlers "sysmap-backend/application/commands/handlers"
	"sysmap-backend/application/ports"
	"sysmap-backend/application/queries"
	querybus "sysmap-backend/application/queries/bus"
	queryhandlers "sysmap-backend/application/queries/handlers"
	"sysmap-backend/application/services"
	"sysmap-backend/infrastructure/config"
	"sysmap-backend/infrastructure/layout"
	"sysmap-backend/infrastructure/persistence/supabase"
	"sysmap-backend/pkg/auth"
	"sysmap-backend/pkg/observability"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ProvideLogLevel creates the atomic level shared by the logger and the
// runtime settings watcher, which retunes it on reload.
func ProvideLogLevel(cfg *config.Config) zap.AtomicLevel {
	level := zapcore.InfoLevel
	if parsed, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
		level = parsed
	}
	return zap.NewAtomicLevelAt(level)
}

// ProvideLogger creates the process logger
func ProvideLogger(cfg *config.Config, level zap.AtomicLevel) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = level
	return zapCfg.Build()
}

// ProvideRateLimiter creates the shared IP rate limiter. Runtime settings
// can retune its limits without a restart.
func ProvideRateLimiter() *auth.IPRateLimiter {
	return auth.NewIPRateLimiter(300, 50)
}

// ProvideMetrics creates the Prometheus collectors
func ProvideMetrics() *observability.Metrics {
	return observability.NewMetrics()
}

// ProvideStore creates the Supabase-backed entity store
func ProvideStore(cfg *config.Config, logger *zap.Logger, metrics *observability.Metrics) (ports.EntityStore, error) {
	return supabase.NewStore(cfg.SupabaseURL, cfg.SupabaseServiceKey, logger, metrics)
}

// ProvideLayoutEngine creates the external layout engine, or nil when no
// service is configured so graphs use the circular fallback.
func ProvideLayoutEngine(cfg *config.Config, logger *zap.Logger) ports.LayoutEngine {
	if cfg.LayoutServiceURL == "" {
		return nil
	}
	return layout.NewHTTPEngine(cfg.LayoutServiceURL, logger)
}

// ProvideResolver creates the descendant resolver
func ProvideResolver(store ports.EntityStore, logger *zap.Logger) *services.DescendantResolver {
	return services.NewDescendantResolver(store, logger)
}

// ProvideClassifier creates the interface classifier
func ProvideClassifier(store ports.EntityStore, logger *zap.Logger) *services.InterfaceClassifier {
	return services.NewInterfaceClassifier(store, store, logger)
}

// ProvideGraphBuilder creates the graph builder
func ProvideGraphBuilder(engine ports.LayoutEngine, logger *zap.Logger) *services.GraphBuilder {
	return services.NewGraphBuilder(engine, logger)
}

// ProvideSubtreeLoader creates the navigation subtree loader
func ProvideSubtreeLoader(resolver *services.DescendantResolver, logger *zap.Logger) *services.SubtreeLoader {
	return services.NewSubtreeLoader(resolver, logger)
}

// ProvideDiffRenderer creates the revision diff renderer
func ProvideDiffRenderer() *services.RevisionDiffRenderer {
	return services.NewRevisionDiffRenderer()
}

// ProvideCommandBus creates a command bus with registered handlers
func ProvideCommandBus(store ports.EntityStore, logger *zap.Logger) *bus.CommandBus {
	commandBus := bus.NewCommandBus()

	createSystemHandler := commandhandlers.NewCreateSystemHandler(store, logger)
	commandBus.Register(&commands.CreateSystemCommand{}, bus.CommandHandlerFunc(func(ctx context.Context, cmd bus.Command) error {
		createCmd, ok := cmd.(*commands.CreateSystemCommand)
		if !ok {
			return fmt.Errorf("invalid command type")
		}
		return createSystemHandler.Handle(ctx, createCmd)
	}))

	updateSystemHandler := commandhandlers.NewUpdateSystemHandler(store, logger)
	commandBus.Register(&commands.UpdateSystemCommand{}, bus.CommandHandlerFunc(func(ctx context.Context, cmd bus.Command) error {
		updateCmd, ok := cmd.(*commands.UpdateSystemCommand)
		if !ok {
			return fmt.Errorf("invalid command type")
		}
		return updateSystemHandler.Handle(ctx, updateCmd)
	}))

	deleteSystemHandler := commandhandlers.NewDeleteSystemHandler(store, logger)
	commandBus.Register(&commands.DeleteSystemCommand{}, bus.CommandHandlerFunc(func(ctx context.Context, cmd bus.Command) error {
		deleteCmd, ok := cmd.(*commands.DeleteSystemCommand)
		if !ok {
			return fmt.Errorf("invalid command type")
		}
		return deleteSystemHandler.Handle(ctx, deleteCmd)
	}))

	createInterfaceHandler := commandhandlers.NewCreateInterfaceHandler(store, logger)
	commandBus.Register(&commands.CreateInterfaceCommand{}, bus.CommandHandlerFunc(func(ctx context.Context, cmd bus.Command) error {
		createCmd, ok := cmd.(*commands.CreateInterfaceCommand)
		if !ok {
			return fmt.Errorf("invalid command type")
		}
		return createInterfaceHandler.Handle(ctx, createCmd)
	}))

	updateInterfaceHandler := commandhandlers.NewUpdateInterfaceHandler(store, logger)
	commandBus.Register(&commands.UpdateInterfaceCommand{}, bus.CommandHandlerFunc(func(ctx context.Context, cmd bus.Command) error {
		updateCmd, ok := cmd.(*commands.UpdateInterfaceCommand)
		if !ok {
			return fmt.Errorf("invalid command type")
		}
		return updateInterfaceHandler.Handle(ctx, updateCmd)
	}))

	deleteInterfaceHandler := commandhandlers.NewDeleteInterfaceHandler(store, logger)
	commandBus.Register(&commands.DeleteInterfaceCommand{}, bus.CommandHandlerFunc(func(ctx context.Context, cmd bus.Command) error {
		deleteCmd, ok := cmd.(*commands.DeleteInterfaceCommand)
		if !ok {
			return fmt.Errorf("invalid command type")
		}
		return deleteInterfaceHandler.Handle(ctx, deleteCmd)
	}))

	restoreHandler := commandhandlers.NewRestoreRevisionHandler(store, logger)
	commandBus.Register(&commands.RestoreRevisionCommand{}, bus.CommandHandlerFunc(func(ctx context.Context, cmd bus.Command) error {
		restoreCmd, ok := cmd.(*commands.RestoreRevisionCommand)
		if !ok {
			return fmt.Errorf("invalid command type")
		}
		return restoreHandler.Handle(ctx, restoreCmd)
	}))

	return commandBus
}

// ProvideQueryBus creates a query bus with registered handlers
func ProvideQueryBus(
	store ports.EntityStore,
	resolver *services.DescendantResolver,
	classifier *services.InterfaceClassifier,
	builder *services.GraphBuilder,
	loader *services.SubtreeLoader,
	renderer *services.RevisionDiffRenderer,
	logger *zap.Logger,
) *querybus.QueryBus {
	queryBus := querybus.NewQueryBus()

	getSystemHandler := queryhandlers.NewGetSystemHandler(store, logger)
	queryBus.Register(queries.GetSystemQuery{}, querybus.QueryHandlerFunc(func(ctx context.Context, query querybus.Query) (interface{}, error) {
		getQuery, ok := query.(queries.GetSystemQuery)
		if !ok {
			return nil, fmt.Errorf("invalid query type")
		}
		return getSystemHandler.Handle(ctx, getQuery)
	}))

	listSystemsHandler := queryhandlers.NewListSystemsHandler(store, logger)
	queryBus.Register(queries.ListSystemsQuery{}, querybus.QueryHandlerFunc(func(ctx context.Context, query querybus.Query) (interface{}, error) {
		listQuery, ok := query.(queries.ListSystemsQuery)
		if !ok {
			return nil, fmt.Errorf("invalid query type")
		}
		return listSystemsHandler.Handle(ctx, listQuery)
	}))

	getSubtreeHandler := queryhandlers.NewGetSubtreeHandler(loader, logger)
	queryBus.Register(queries.GetSubtreeQuery{}, querybus.QueryHandlerFunc(func(ctx context.Context, query querybus.Query) (interface{}, error) {
		getQuery, ok := query.(queries.GetSubtreeQuery)
		if !ok {
			return nil, fmt.Errorf("invalid query type")
		}
		return getSubtreeHandler.Handle(ctx, getQuery)
	}))

	getInterfaceHandler := queryhandlers.NewGetInterfaceHandler(store, logger)
	queryBus.Register(queries.GetInterfaceQuery{}, querybus.QueryHandlerFunc(func(ctx context.Context, query querybus.Query) (interface{}, error) {
		getQuery, ok := query.(queries.GetInterfaceQuery)
		if !ok {
			return nil, fmt.Errorf("invalid query type")
		}
		return getInterfaceHandler.Handle(ctx, getQuery)
	}))

	getInterfacesHandler := queryhandlers.NewGetSystemInterfacesHandler(resolver, classifier, logger)
	queryBus.Register(queries.GetSystemInterfacesQuery{}, querybus.QueryHandlerFunc(func(ctx context.Context, query querybus.Query) (interface{}, error) {
		getQuery, ok := query.(queries.GetSystemInterfacesQuery)
		if !ok {
			return nil, fmt.Errorf("invalid query type")
		}
		return getInterfacesHandler.Handle(ctx, getQuery)
	}))

	availableHandler := queryhandlers.NewGetAvailableSystemsHandler(resolver, classifier, logger)
	queryBus.Register(queries.GetAvailableSystemsQuery{}, querybus.QueryHandlerFunc(func(ctx context.Context, query querybus.Query) (interface{}, error) {
		getQuery, ok := query.(queries.GetAvailableSystemsQuery)
		if !ok {
			return nil, fmt.Errorf("invalid query type")
		}
		return availableHandler.Handle(ctx, getQuery)
	}))

	getGraphHandler := queryhandlers.NewGetGraphHandler(resolver, classifier, builder, logger)
	queryBus.Register(queries.GetGraphQuery{}, querybus.QueryHandlerFunc(func(ctx context.Context, query querybus.Query) (interface{}, error) {
		getQuery, ok := query.(queries.GetGraphQuery)
		if !ok {
			return nil, fmt.Errorf("invalid query type")
		}
		return getGraphHandler.Handle(ctx, getQuery)
	}))

	listRevisionsHandler := queryhandlers.NewListRevisionsHandler(store, renderer, logger)
	queryBus.Register(queries.ListRevisionsQuery{}, querybus.QueryHandlerFunc(func(ctx context.Context, query querybus.Query) (interface{}, error) {
		listQuery, ok := query.(queries.ListRevisionsQuery)
		if !ok {
			return nil, fmt.Errorf("invalid query type")
		}
		return listRevisionsHandler.Handle(ctx, listQuery)
	}))

	return queryBus
}
