package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wander/internal/models/db_models"
	"wander/internal/models/request_models"
	"wander/internal/models/response_models"
	"wander/internal/repositories"
	"wander/pkg/utils"
)

type TripService interface {
	Save(ctx context.Context, userID string, req request_models.SaveTripRequest) (*response_models.SavedTripResponse, error)
	List(ctx context.Context, userID string) ([]response_models.SavedTripResponse, error)
	Get(ctx context.Context, userID, tripID string) (*response_models.SavedTripResponse, error)
	Update(ctx context.Context, userID, tripID string, req request_models.UpdateTripRequest) (*response_models.SavedTripResponse, error)
	Delete(ctx context.Context, userID, tripID string) error
}

type tripService struct {
	trips repositories.TripRepository
}

func NewTripService(trips repositories.TripRepository) TripService {
	return &tripService{trips: trips}
}

func (s *tripService) Save(ctx context.Context, userID string, req request_models.SaveTripRequest) (*response_models.SavedTripResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if strings.TrimSpace(req.TripName) == "" || strings.TrimSpace(req.Country) == "" || req.Days < 1 {
		return nil, utils.ErrInvalidInput
	}

	trip := &db_models.SavedTrip{
		UserID:    uid,
		TripName:  strings.TrimSpace(req.TripName),
		Country:   strings.TrimSpace(req.Country),
		Locations: strings.TrimSpace(req.Locations),
		Days:      req.Days,
		Origin:    strings.TrimSpace(req.Origin),
		StartDate: req.StartDate,
		TripPace:  req.TripPace,
		Notes:     req.Notes,
		Itinerary: normalizeJSON(req.Itinerary),
		Budget:    normalizeJSON(req.Budget),
		Bookings:  normalizeJSON(req.Bookings),
		MapData:   normalizeJSON(req.MapData),
		Weather:   normalizeJSON(req.Weather),
		News:      normalizeJSON(req.News),
	}
	if err := s.trips.Insert(ctx, trip); err != nil {
		log.Printf("trips: insert failed: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return tripSummary(trip), nil
}

func (s *tripService) List(ctx context.Context, userID string) ([]response_models.SavedTripResponse, error) {
	trips, err := s.trips.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.SavedTripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, *tripSummary(&trips[i]))
	}
	return out, nil
}

func (s *tripService) Get(ctx context.Context, userID, tripID string) (*response_models.SavedTripResponse, error) {
	trip, err := s.trips.FindByIDForUser(ctx, tripID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	resp := tripSummary(trip)
	resp.Data = &response_models.SavedTripData{}
	decodeSection(trip.Itinerary, &resp.Data.Itinerary)
	decodeSection(trip.Budget, &resp.Data.Budget)
	decodeSection(trip.Bookings, &resp.Data.Bookings)
	decodeSection(trip.MapData, &resp.Data.MapData)
	decodeSection(trip.Weather, &resp.Data.Weather)
	decodeSection(trip.News, &resp.Data.News)
	return resp, nil
}

func (s *tripService) Update(ctx context.Context, userID, tripID string, req request_models.UpdateTripRequest) (*response_models.SavedTripResponse, error) {
	trip, err := s.trips.FindByIDForUser(ctx, tripID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	if req.TripName != nil {
		name := strings.TrimSpace(*req.TripName)
		if name == "" {
			return nil, utils.ErrInvalidInput
		}
		trip.TripName = name
	}
	if req.Notes != nil {
		trip.Notes = *req.Notes
	}
	if req.IsFavorite != nil {
		trip.IsFavorite = *req.IsFavorite
	}

	if err := s.trips.Update(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return tripSummary(trip), nil
}

func (s *tripService) Delete(ctx context.Context, userID, tripID string) error {
	if err := s.trips.Delete(ctx, tripID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrTripNotFound
		}
		return utils.ErrDatabaseError
	}
	return nil
}

func tripSummary(trip *db_models.SavedTrip) *response_models.SavedTripResponse {
	return &response_models.SavedTripResponse{
		ID:         trip.ID.String(),
		TripName:   trip.TripName,
		Country:    trip.Country,
		Locations:  trip.Locations,
		Days:       trip.Days,
		Origin:     trip.Origin,
		StartDate:  trip.StartDate,
		TripPace:   trip.TripPace,
		Notes:      trip.Notes,
		IsFavorite: trip.IsFavorite,
		CreatedAt:  utils.FormatUnix(trip.CreatedAt),
		UpdatedAt:  utils.FormatUnix(trip.UpdatedAt),
	}
}

// normalizeJSON maps empty payloads to SQL NULL instead of the empty string,
// which postgres rejects for jsonb columns.
func normalizeJSON(raw json.RawMessage) []byte {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return nil
	}
	return []byte(s)
}

// decodeSection tolerates missing or corrupt stored sections; the detail
// response simply omits what cannot be decoded.
func decodeSection(data []byte, out interface{}) {
	if len(data) == 0 {
		return
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Printf("trips: stored section undecodable: %v", err)
	}
}
