package api

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	adoptionserver "github.com/Apurer/pet-adoption-center/go"
	adoptionsports "github.com/Apurer/pet-adoption-center/internal/domains/adoptions/ports"
	platformobservability "github.com/Apurer/pet-adoption-center/internal/platform/observability"
)

// NewEngine mounts the HTTP API over services. A nil workflows runs
// applications inline; a nil metrics leaves /metrics unmounted.
func NewEngine(serviceName string, services *Services, workflows adoptionsports.ApplicationWorkflows, metrics *platformobservability.HTTPMetrics) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), gin.Logger(), adoptionserver.RequestID(), otelgin.Middleware(serviceName))

	handlers := adoptionserver.ApiHandleFunctions{
		Guard:         adoptionserver.NewGuard(services.Tokens, services.Revocation, services.Admins),
		AdminAPI:      adoptionserver.NewAdminAPI(services.Admins, services.Dashboard, services.Adoptions),
		AdminAuthAPI:  adoptionserver.NewAdminAuthAPI(services.Admins, services.Revocation),
		AdopterAPI:    adoptionserver.NewAdopterAPI(services.Adopters, services.Adoptions, services.Favorites),
		AdoptionAPI:   adoptionserver.NewAdoptionAPI(services.Adoptions, workflows),
		AuthAPI:       adoptionserver.NewAuthAPI(services.Adopters, services.Revocation),
		FavoriteAPI:   adoptionserver.NewFavoriteAPI(services.Favorites),
		PetAPI:        adoptionserver.NewPetAPI(services.Pets, services.Veterinary),
		VeterinaryAPI: adoptionserver.NewVeterinaryAPI(services.Veterinary),
	}
	if metrics != nil {
		engine.Use(metrics.Middleware())
		handlers.Metrics = metrics.Handler()
	}
	return adoptionserver.NewRouterWithGinEngine(engine, handlers)
}
