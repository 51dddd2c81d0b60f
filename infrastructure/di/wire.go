//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"sysmap-backend/application/commands/bus"
	"sysmap-backend/application/ports"
	querybus "sysmap-backend/application/queries/bus"
	"sysmap-backend/application/services"
	"sysmap-backend/infrastructure/config"
	"sysmap-backend/pkg/auth"
	"sysmap-backend/pkg/observability"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	LogLevel    zap.AtomicLevel
	Logger      *zap.Logger
	Metrics     *observability.Metrics
	Store       ports.EntityStore
	RateLimiter *auth.IPRateLimiter
	Resolver    *services.DescendantResolver
	Classifier  *services.InterfaceClassifier
	Builder     *services.GraphBuilder
	Loader      *services.SubtreeLoader
	Renderer    *services.RevisionDiffRenderer
	CommandBus  *bus.CommandBus
	QueryBus    *querybus.QueryBus
}

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogLevel,
	ProvideLogger,
	ProvideRateLimiter,
	ProvideMetrics,
	ProvideStore,
	ProvideLayoutEngine,
	ProvideResolver,
	ProvideClassifier,
	ProvideGraphBuilder,
	ProvideSubtreeLoader,
	ProvideDiffRenderer,
	ProvideCommandBus,
	ProvideQueryBus,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
