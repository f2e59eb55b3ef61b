package web

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"

	"wander/internal/models/response_models"
	"wander/pkg/middleware"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"richtext":  RichText,
		"activity":  ActivityHTML,
		"hotelURL":  HotelBookingURL,
		"flightURL": FlightBookingURL,
		"dayNumber": response_models.DayNumber,
		"dict": func(pairs ...interface{}) map[string]interface{} {
			m := make(map[string]interface{}, len(pairs)/2)
			for i := 0; i+1 < len(pairs); i += 2 {
				key, ok := pairs[i].(string)
				if !ok {
					continue
				}
				m[key] = pairs[i+1]
			}
			return m
		},
	}
}

// NewRouter wires the HTML routes. Trip persistence routes work without
// middleware-level auth: SaveTrip itself routes anonymous users through the
// login flow first.
func NewRouter(h *Handlers) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())

	tmpl := template.Must(template.New("").Funcs(templateFuncs()).ParseFS(templateFS, "templates/*.tmpl"))
	r.SetHTMLTemplate(tmpl)

	r.GET("/", h.Home)
	r.POST("/plan", h.PlanTrip)
	r.GET("/plan/status", h.PlanningStatus)
	r.GET("/plan/locate", h.Locate)
	r.GET("/results", h.Results)

	r.POST("/chat", h.Chat)
	r.GET("/chat", h.ChatTranscript)

	r.GET("/login", h.LoginPage)
	r.POST("/login", h.Login)
	r.GET("/signup", h.SignupPage)
	r.POST("/signup", h.Signup)
	r.POST("/auth/google", h.GoogleAuth)
	r.POST("/logout", h.Logout)
	r.GET("/profile", h.Profile)
	r.POST("/profile", h.UpdateProfile)

	r.GET("/trips", h.Trips)
	r.POST("/trips/save", h.SaveTrip)
	r.GET("/trips/:id", h.TripDetail)
	r.POST("/trips/:id/favorite", h.ToggleFavorite)
	r.POST("/trips/:id/delete", h.DeleteTrip)

	return r
}
