// Package services contains the application logic behind the API
// controllers: trip planning, the chat assistant, accounts, and saved trips.
package services

import (
	"context"
	"log"
	"strings"
	"sync"

	"wander/internal/models/request_models"
	"wander/internal/models/response_models"
	"wander/pkg/utils"
)

const (
	minTripDays = 1
	maxTripDays = 30
)

// The plan service sees its agents through narrow interfaces so tests can
// substitute stubs per section.
type (
	ItineraryGenerator interface {
		Generate(ctx context.Context, req request_models.PlanRequest) (response_models.ItinerarySection, error)
	}
	BudgetGenerator interface {
		Generate(ctx context.Context, req request_models.PlanRequest) (response_models.BudgetSection, error)
	}
	BookingGenerator interface {
		Generate(req request_models.PlanRequest) *response_models.Bookings
	}
	WikiEnricher interface {
		Enrich(section response_models.ItinerarySection) response_models.ItinerarySection
	}
	WeatherProvider interface {
		Generate(ctx context.Context, req request_models.PlanRequest) *response_models.WeatherForecast
	}
	NewsProvider interface {
		Generate(ctx context.Context, req request_models.PlanRequest) []response_models.NewsArticle
	}
	MapBuilder interface {
		Generate(ctx context.Context, country string, itinerary response_models.ItinerarySection) []response_models.MapAttraction
	}
)

type PlanService interface {
	Plan(ctx context.Context, req request_models.PlanRequest) (*response_models.TripResponse, error)
}

type planService struct {
	itinerary ItineraryGenerator
	budget    BudgetGenerator
	booking   BookingGenerator
	wiki      WikiEnricher
	weather   WeatherProvider
	news      NewsProvider
	mapAgent  MapBuilder
}

func NewPlanService(
	itinerary ItineraryGenerator,
	budget BudgetGenerator,
	booking BookingGenerator,
	wiki WikiEnricher,
	weather WeatherProvider,
	news NewsProvider,
	mapAgent MapBuilder,
) PlanService {
	return &planService{
		itinerary: itinerary,
		budget:    budget,
		booking:   booking,
		wiki:      wiki,
		weather:   weather,
		news:      news,
		mapAgent:  mapAgent,
	}
}

// Plan runs the agent pipeline. The itinerary is generated first because the
// wiki and map agents consume it; everything else fans out concurrently.
// Only an itinerary failure fails the whole plan; every other section
// degrades to absence.
func (s *planService) Plan(ctx context.Context, req request_models.PlanRequest) (*response_models.TripResponse, error) {
	if strings.TrimSpace(req.Country) == "" {
		return nil, utils.ErrCountryRequired
	}
	req.Country = strings.TrimSpace(req.Country)
	if req.Days < minTripDays {
		req.Days = minTripDays
	}
	if req.Days > maxTripDays {
		req.Days = maxTripDays
	}

	itinerary, err := s.itinerary.Generate(ctx, req)
	if err != nil {
		log.Printf("plan: itinerary generation failed: %v", err)
		return nil, utils.ErrLLMFailure
	}
	itinerary = s.wiki.Enrich(itinerary)

	resp := &response_models.TripResponse{
		Itinerary: itinerary,
		Bookings:  s.booking.Generate(req),
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		budget, err := s.budget.Generate(ctx, req)
		if err != nil {
			log.Printf("plan: budget generation failed: %v", err)
			return
		}
		resp.Budget = budget
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		resp.Weather = s.weather.Generate(ctx, req)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		resp.News = s.news.Generate(ctx, req)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		resp.MapData = s.mapAgent.Generate(ctx, req.Country, itinerary)
	}()

	wg.Wait()
	return resp, nil
}
