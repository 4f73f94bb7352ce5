// Package api serves the booking widget page and the JSON endpoints it
// talks to. All business logic lives in the booking, schedule and store
// packages; handlers only decode, validate shapes and encode.
package api

import (
	_ "embed"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"pitchbook/internal/booking"
	"pitchbook/internal/schedule"
	"pitchbook/internal/store"
)

//go:embed static/index.html
var indexHTML []byte

// Options configures the widget server.
type Options struct {
	Courts    int
	DaysAhead int
	Window    schedule.Window
	RateLimit rate.Limit
	RateBurst int
	Now       func() time.Time
}

// Server hosts the widget and its JSON API.
type Server struct {
	store     *store.Store
	bookings  *booking.Service
	window    schedule.Window
	courts    int
	daysAhead int
	now       func() time.Time
	limiter   *rate.Limiter
	logger    *zerolog.Logger
}

func NewServer(st *store.Store, svc *booking.Service, opts Options, logger *zerolog.Logger) *Server {
	if opts.Courts <= 0 {
		opts.Courts = 3
	}
	if opts.DaysAhead <= 0 {
		opts.DaysAhead = 14
	}
	if opts.Window.CloseHour <= opts.Window.OpenHour {
		opts.Window = schedule.DefaultWindow
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 5
	}
	if opts.RateBurst <= 0 {
		opts.RateBurst = 10
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Server{
		store:     st,
		bookings:  svc,
		window:    opts.Window,
		courts:    opts.Courts,
		daysAhead: opts.DaysAhead,
		now:       opts.Now,
		limiter:   rate.NewLimiter(opts.RateLimit, opts.RateBurst),
		logger:    logger,
	}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/config", s.handleConfig)
	mux.HandleFunc("/api/availability", s.handleAvailability)
	mux.HandleFunc("/api/bookings", s.handleBookings)
	mux.HandleFunc("/api/bookings/", s.handleBookingByID)
	mux.HandleFunc("/api/export", s.handleExport)
	mux.HandleFunc("/", s.handleIndex)
	return s.withRequestLog(mux)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
