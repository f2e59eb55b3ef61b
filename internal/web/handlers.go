package web

import (
	"encoding/json"
	"errors"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"wander/internal/models/request_models"
	"wander/internal/models/response_models"
)

// Handlers serves the HTML front end backed by the JSON API.
type Handlers struct {
	api      *APIClient
	planner  *Planner
	sessions *SessionStore
}

func NewHandlers(api *APIClient, planner *Planner, sessions *SessionStore) *Handlers {
	return &Handlers{api: api, planner: planner, sessions: sessions}
}

// session resolves the browser's session, setting the cookie when new.
func (h *Handlers) session(c *gin.Context) *Session {
	id, _ := c.Cookie(sessionCookie)
	sess, newID := h.sessions.Get(id)
	if newID != id {
		c.SetCookie(sessionCookie, newID, 0, "/", "", false, true)
	}
	return sess
}

type pageData struct {
	Title    string
	LoggedIn bool
	User     *response_models.UserResponse
	Error    string
	Data     interface{}
}

func (h *Handlers) page(c *gin.Context, sess *Session, title string, data interface{}) pageData {
	_, user := sess.Auth()
	return pageData{
		Title:    title,
		LoggedIn: sess.LoggedIn(),
		User:     user,
		Error:    c.Query("error"),
		Data:     data,
	}
}

func (h *Handlers) Home(c *gin.Context) {
	sess := h.session(c)
	c.HTML(http.StatusOK, "planner.tmpl", h.page(c, sess, "Plan a trip", nil))
}

// PlanTrip handles the planner form, posted via fetch. The stage cycler runs
// for the duration of the upstream call so PlanningStatus has something to
// report, and is stopped on every exit path.
func (h *Handlers) PlanTrip(c *gin.Context) {
	sess := h.session(c)

	form := TripForm{
		Country:           c.PostForm("country"),
		Locations:         c.PostForm("locations"),
		Origin:            c.PostForm("origin"),
		Days:              c.PostForm("days"),
		StartDate:         c.PostForm("start_date"),
		ReturnDate:        c.PostForm("return_date"),
		Pace:              c.PostForm("pace"),
		AdditionalDetails: c.PostForm("additional_details"),
	}

	req, err := h.planner.BuildRequest(c.Request.Context(), form)
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message, "field": ve.Field})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess.StartPlanning(NewStageCycler(3 * time.Second))
	defer sess.FinishPlanning()

	result, err := h.api.PlanTrip(c.Request.Context(), req)
	if err != nil {
		log.Printf("web: plan call failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": UpstreamMessage(err)})
		return
	}

	sess.SetTrip(&TripSnapshot{
		Result:    result,
		Country:   req.Country,
		Locations: req.Locations,
		Days:      req.Days,
		Origin:    req.Origin,
		StartDate: form.StartDate,
	})
	c.JSON(http.StatusOK, gin.H{"redirect": "/results"})
}

// Locate reverse-geocodes browser coordinates for the "use my location"
// origin prefill.
func (h *Handlers) Locate(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	if errLat != nil || errLon != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coordinates"})
		return
	}

	origin, ok, err := h.planner.OriginFromCoords(c.Request.Context(), lat, lon)
	if err != nil {
		log.Printf("web: reverse geocode failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not look up your location"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Could not determine your city from your location"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"origin": origin})
}

// PlanningStatus reports the current cosmetic progress label for polling.
func (h *Handlers) PlanningStatus(c *gin.Context) {
	sess := h.session(c)
	c.JSON(http.StatusOK, gin.H{"stage": sess.PlanningStage()})
}

type resultsView struct {
	Trip        *TripSnapshot
	DayKeys     []string
	Destination string
	EndDate     string
	MarkersJSON template.JS
	Transcript  []ChatMessage
}

// bookingDestination is the first listed location, else the country.
func bookingDestination(trip *TripSnapshot) string {
	for _, part := range strings.Split(trip.Locations, ",") {
		if p := strings.TrimSpace(part); p != "" {
			return p
		}
	}
	return trip.Country
}

func (h *Handlers) Results(c *gin.Context) {
	sess := h.session(c)
	trip := sess.Trip()
	if trip == nil || trip.Result == nil {
		c.HTML(http.StatusOK, "results_empty.tmpl", h.page(c, sess, "Your trip", nil))
		return
	}

	markers := ReconcileMarkers(trip.Result.MapData)
	markersJSON, err := json.Marshal(markers)
	if err != nil {
		markersJSON = []byte("[]")
	}

	view := resultsView{
		Trip:        trip,
		DayKeys:     trip.Result.Itinerary.SortedDayKeys(),
		Destination: bookingDestination(trip),
		EndDate:     EndDate(trip.StartDate, trip.Days),
		MarkersJSON: template.JS(markersJSON),
		Transcript:  sess.Chat().Messages(),
	}
	c.HTML(http.StatusOK, "results.tmpl", h.page(c, sess, "Your trip", view))
}

// Chat forwards one message to the assistant. The user bubble is appended
// before the call; any failure appends the fixed failure bubble instead of
// surfacing an error.
func (h *Handlers) Chat(c *gin.Context) {
	sess := h.session(c)

	message := strings.TrimSpace(c.PostForm("message"))
	if message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	transcript := sess.Chat()
	transcript.AppendUser(message)

	req := request_models.ChatRequest{Message: message}
	if trip := sess.Trip(); trip != nil && trip.Result != nil {
		itinerary, _ := json.Marshal(trip.Result.Itinerary)
		budget, _ := json.Marshal(trip.Result.Budget)
		req.CurrentTrip = request_models.TripContext{
			Country:   trip.Country,
			Days:      trip.Days,
			Locations: trip.Locations,
			Itinerary: itinerary,
			Budget:    budget,
		}
	}

	resp, err := h.api.Chat(c.Request.Context(), req)
	if err != nil {
		log.Printf("web: chat call failed: %v", err)
		transcript.AppendFailure()
	} else {
		transcript.AppendAssistant(resp.Response)
		if resp.Changes != nil {
			transcript.AppendSuggestions(resp.Changes.Suggestions)
		}
	}

	c.JSON(http.StatusOK, gin.H{"messages": transcript.Messages()})
}

// ChatTranscript lets the overlay poll for the delayed suggestion bubble.
func (h *Handlers) ChatTranscript(c *gin.Context) {
	sess := h.session(c)
	c.JSON(http.StatusOK, gin.H{"messages": sess.Chat().Messages()})
}

func (h *Handlers) LoginPage(c *gin.Context) {
	sess := h.session(c)
	c.HTML(http.StatusOK, "login.tmpl", h.page(c, sess, "Log in", c.Query("next")))
}

func (h *Handlers) Login(c *gin.Context) {
	sess := h.session(c)

	resp, err := h.api.Login(c.Request.Context(), request_models.LoginRequest{
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
	})
	if err != nil {
		h.renderAuthError(c, sess, "login.tmpl", "Log in", err)
		return
	}

	sess.SetAuth(resp.AccessToken, &resp.User)
	h.afterAuth(c, sess)
}

func (h *Handlers) SignupPage(c *gin.Context) {
	sess := h.session(c)
	c.HTML(http.StatusOK, "signup.tmpl", h.page(c, sess, "Sign up", c.Query("next")))
}

func (h *Handlers) Signup(c *gin.Context) {
	sess := h.session(c)

	password := c.PostForm("password")
	if password != c.PostForm("confirm_password") {
		h.renderFormError(c, sess, "signup.tmpl", "Sign up", "Passwords do not match")
		return
	}
	if len(password) < 6 {
		h.renderFormError(c, sess, "signup.tmpl", "Sign up", "Password must be at least 6 characters")
		return
	}

	resp, err := h.api.SignUp(c.Request.Context(), request_models.SignUpRequest{
		Email:    c.PostForm("email"),
		Username: c.PostForm("username"),
		Password: password,
	})
	if err != nil {
		h.renderAuthError(c, sess, "signup.tmpl", "Sign up", err)
		return
	}

	sess.SetAuth(resp.AccessToken, &resp.User)
	h.afterAuth(c, sess)
}

func (h *Handlers) GoogleAuth(c *gin.Context) {
	sess := h.session(c)

	resp, err := h.api.GoogleAuth(c.Request.Context(), request_models.GoogleAuthRequest{
		Token: c.PostForm("credential"),
	})
	if err != nil {
		h.renderAuthError(c, sess, "login.tmpl", "Log in", err)
		return
	}

	sess.SetAuth(resp.AccessToken, &resp.User)
	h.afterAuth(c, sess)
}

// afterAuth finishes the login flow, completing a deferred trip save when
// that is what sent the user to the login page.
func (h *Handlers) afterAuth(c *gin.Context, sess *Session) {
	if c.PostForm("next") == "/trips/save" && sess.Trip() != nil {
		h.SaveTrip(c)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handlers) Logout(c *gin.Context) {
	sess := h.session(c)
	sess.Logout()
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handlers) Profile(c *gin.Context) {
	sess := h.session(c)
	token, _ := sess.Auth()
	if token == "" {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	user, err := h.api.GetProfile(c.Request.Context(), token)
	if err != nil {
		h.renderFormError(c, sess, "profile.tmpl", "Profile", UpstreamMessage(err))
		return
	}
	sess.SetAuth(token, user)
	c.HTML(http.StatusOK, "profile.tmpl", h.page(c, sess, "Profile", user))
}

func (h *Handlers) UpdateProfile(c *gin.Context) {
	sess := h.session(c)
	token, _ := sess.Auth()
	if token == "" {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	var req request_models.UpdateProfileRequest
	if v := strings.TrimSpace(c.PostForm("username")); v != "" {
		req.Username = &v
	}
	if v := strings.TrimSpace(c.PostForm("email")); v != "" {
		req.Email = &v
	}
	if v := c.PostForm("password"); v != "" {
		if v != c.PostForm("confirm_password") {
			h.renderFormError(c, sess, "profile.tmpl", "Profile", "Passwords do not match")
			return
		}
		if len(v) < 6 {
			h.renderFormError(c, sess, "profile.tmpl", "Profile", "Password must be at least 6 characters")
			return
		}
		req.Password = &v
	}

	user, err := h.api.UpdateProfile(c.Request.Context(), token, req)
	if err != nil {
		h.renderFormError(c, sess, "profile.tmpl", "Profile", UpstreamMessage(err))
		return
	}
	sess.SetAuth(token, user)
	c.Redirect(http.StatusSeeOther, "/profile")
}

// SaveTrip persists the current session trip. Unauthenticated users are sent
// through the login flow first; the save happens only after auth succeeds.
func (h *Handlers) SaveTrip(c *gin.Context) {
	sess := h.session(c)
	trip := sess.Trip()
	if trip == nil || trip.Result == nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	token, _ := sess.Auth()
	if token == "" {
		c.Redirect(http.StatusSeeOther, "/login?next=/trips/save")
		return
	}

	name := strings.TrimSpace(c.PostForm("trip_name"))
	if name == "" {
		name = trip.Country + " trip"
	}

	req := request_models.SaveTripRequest{
		TripName:  name,
		Country:   trip.Country,
		Days:      trip.Days,
		Locations: trip.Locations,
		Origin:    trip.Origin,
		StartDate: trip.StartDate,
		Notes:     c.PostForm("notes"),
	}
	req.Itinerary, _ = json.Marshal(trip.Result.Itinerary)
	req.Budget, _ = json.Marshal(trip.Result.Budget)
	if trip.Result.Bookings != nil {
		req.Bookings, _ = json.Marshal(trip.Result.Bookings)
	}
	if len(trip.Result.MapData) > 0 {
		req.MapData, _ = json.Marshal(trip.Result.MapData)
	}
	if trip.Result.Weather != nil {
		req.Weather, _ = json.Marshal(trip.Result.Weather)
	}
	if len(trip.Result.News) > 0 {
		req.News, _ = json.Marshal(trip.Result.News)
	}

	saved, err := h.api.SaveTrip(c.Request.Context(), token, req)
	if err != nil {
		log.Printf("web: save trip failed: %v", err)
		c.Redirect(http.StatusSeeOther, "/results?error="+url.QueryEscape(UpstreamMessage(err)))
		return
	}
	c.Redirect(http.StatusSeeOther, "/trips/"+saved.ID)
}

func (h *Handlers) Trips(c *gin.Context) {
	sess := h.session(c)
	token, _ := sess.Auth()
	if token == "" {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	trips, err := h.api.ListTrips(c.Request.Context(), token)
	if err != nil {
		c.HTML(http.StatusOK, "trips.tmpl", h.page(c, sess, "My trips", nil))
		return
	}
	c.HTML(http.StatusOK, "trips.tmpl", h.page(c, sess, "My trips", trips))
}

func (h *Handlers) TripDetail(c *gin.Context) {
	sess := h.session(c)
	token, _ := sess.Auth()
	if token == "" {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	trip, err := h.api.GetTrip(c.Request.Context(), token, c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/trips?error="+url.QueryEscape(UpstreamMessage(err)))
		return
	}

	var dayKeys []string
	if trip.Data != nil {
		dayKeys = trip.Data.Itinerary.SortedDayKeys()
	}
	c.HTML(http.StatusOK, "trip_detail.tmpl", h.page(c, sess, trip.TripName, gin.H{
		"Trip":    trip,
		"DayKeys": dayKeys,
	}))
}

// ToggleFavorite flips is_favorite on one trip and returns the new value.
func (h *Handlers) ToggleFavorite(c *gin.Context) {
	sess := h.session(c)
	token, _ := sess.Auth()
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
		return
	}

	fav := c.PostForm("is_favorite") == "true"
	trip, err := h.api.UpdateTrip(c.Request.Context(), token, c.Param("id"), request_models.UpdateTripRequest{
		IsFavorite: &fav,
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": UpstreamMessage(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_favorite": trip.IsFavorite})
}

func (h *Handlers) DeleteTrip(c *gin.Context) {
	sess := h.session(c)
	token, _ := sess.Auth()
	if token == "" {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	if err := h.api.DeleteTrip(c.Request.Context(), token, c.Param("id")); err != nil {
		c.Redirect(http.StatusSeeOther, "/trips?error="+url.QueryEscape(UpstreamMessage(err)))
		return
	}
	c.Redirect(http.StatusSeeOther, "/trips")
}

func (h *Handlers) renderAuthError(c *gin.Context, sess *Session, tmpl, title string, err error) {
	h.renderFormError(c, sess, tmpl, title, UpstreamMessage(err))
}

func (h *Handlers) renderFormError(c *gin.Context, sess *Session, tmpl, title, message string) {
	data := h.page(c, sess, title, c.PostForm("next"))
	data.Error = message
	c.HTML(http.StatusBadRequest, tmpl, data)
}
