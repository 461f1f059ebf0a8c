package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"hardware-ai-orchestrator/internal/middleware"
	queryHTTP "hardware-ai-orchestrator/internal/query/delivery/http"
	queryUC "hardware-ai-orchestrator/internal/query/usecase"
)

// setupQueryDomain initializes the query domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase:      uc := mydomainUC.New(srv.l, deps...)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) setupQueryDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	uc := queryUC.New(srv.l, srv.store, srv.retriever, srv.exporter, srv.tracker)
	h := queryHTTP.New(srv.l, uc)
	queryHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Query domain registered")
}
