// Package kernel assembles the HTTP handler: global middleware, the
// operational endpoints and the web routes.
package kernel

import (
	"fmt"
	"net/http"

	"gorm.io/gorm"

	catalogue "github.com/shashiranjanraj/venuebook/app/graphql"
	"github.com/shashiranjanraj/venuebook/app/routes"
	"github.com/shashiranjanraj/venuebook/pkg/graphql"
	"github.com/shashiranjanraj/venuebook/pkg/metrics"
	"github.com/shashiranjanraj/venuebook/pkg/middleware"
	"github.com/shashiranjanraj/venuebook/pkg/reqid"
	"github.com/shashiranjanraj/venuebook/pkg/router"
	"github.com/shashiranjanraj/venuebook/pkg/session"
)

type HTTPKernel struct {
	router *router.Router
}

// NewHTTPKernel wires services on db into a ready router.
func NewHTTPKernel(db *gorm.DB) (*HTTPKernel, error) {
	svc := routes.NewServices(db)

	schema, err := catalogue.NewSchema(svc.Venues, svc.News, svc.Messages)
	if err != nil {
		return nil, fmt.Errorf("kernel: graphql schema: %w", err)
	}

	r := router.New()
	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		session.Middleware(session.DefaultOptions()),
	)

	r.Handle("/metrics", metrics.Handler())
	r.Handle("/graphql", middleware.CORS(middleware.DefaultCORSOptions())(graphql.Handler(schema)))
	r.Get("/healthz", "healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	routes.RegisterWeb(r, routes.NewControllers(svc))

	return &HTTPKernel{router: r}, nil
}

func (k *HTTPKernel) Handler() http.Handler {
	return k.router.Handler()
}

// Routes lists the named routes.
func (k *HTTPKernel) Routes() []router.RouteInfo {
	return k.router.Routes()
}
