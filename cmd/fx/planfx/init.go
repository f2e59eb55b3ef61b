package planfx

import (
	"os"

	"go.uber.org/fx"

	"wander/internal/agents"
	"wander/internal/services"
	"wander/pkg/llm"
	"wander/pkg/nominatim"
)

var Module = fx.Provide(
	provideNominatim, providePlanService)

func provideNominatim() *nominatim.Client {
	return nominatim.NewClient(os.Getenv("NOMINATIM_URL"))
}

func providePlanService(client llm.Client, geo *nominatim.Client) services.PlanService {
	return services.NewPlanService(
		agents.NewItineraryAgent(client),
		agents.NewBudgetAgent(client),
		agents.NewBookingAgent(),
		agents.NewWikiAgent(),
		agents.NewWeatherAgent(),
		agents.NewNewsAgent(os.Getenv("NEWS_API_KEY")),
		agents.NewMapAgent(geo),
	)
}
