package graphql

import (
	"context"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-tipping-ledger/internal/api/shared/executor"
	"github.com/feral-file/ff-tipping-ledger/internal/logger"
)

// Handler defines the interface for GraphQL API handlers
type Handler interface {
	// HandleGraphQL handles GraphQL queries
	HandleGraphQL(c *gin.Context)

	// HandlePlayground serves the GraphQL Playground
	HandlePlayground(c *gin.Context)
}

// gqlHandler implements the Handler interface using gqlgen. The schema is read-only;
// every mutation goes through the authenticated REST routes.
type gqlHandler struct {
	server *handler.Server
}

// NewHandler creates a new GraphQL handler with gqlgen
func NewHandler(exec executor.Executor) Handler {
	srv := handler.NewDefaultServer(NewExecutableSchema(NewResolver(exec)))
	srv.SetErrorPresenter(ErrorPresenter)
	srv.SetRecoverFunc(RecoverFunc)
	srv.AroundOperations(logOperation)

	return &gqlHandler{server: srv}
}

func logOperation(ctx context.Context, next graphql.OperationHandler) graphql.ResponseHandler {
	opCtx := graphql.GetOperationContext(ctx)
	start := time.Now()
	defer func() {
		logger.DebugCtx(ctx, "GraphQL operation dispatched",
			zap.String("operation", opCtx.OperationName),
			zap.Duration("duration", time.Since(start)),
		)
	}()
	return next(ctx)
}

// HandleGraphQL processes GraphQL queries
func (h *gqlHandler) HandleGraphQL(c *gin.Context) {
	h.server.ServeHTTP(c.Writer, c.Request)
}

// HandlePlayground serves the GraphQL Playground interface
func (h *gqlHandler) HandlePlayground(c *gin.Context) {
	playground.Handler("Tipping Ledger GraphQL Playground", "/graphql").ServeHTTP(c.Writer, c.Request)
}

// SetupRoutes configures GraphQL API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	router.POST("/graphql", handler.HandleGraphQL)
	router.GET("/graphql", handler.HandlePlayground)
}
