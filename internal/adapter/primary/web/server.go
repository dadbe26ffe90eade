package web

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"folio/internal/domain"
	"folio/internal/logging"
	"folio/internal/usecase"
)

const sessionCookie = "folio_session"

// Deps are the use cases the web adapter drives.
type Deps struct {
	Gallery   usecase.GalleryUseCase
	Contact   usecase.ContactUseCase
	Carousels usecase.CarouselUseCase
	// AssetsDir is served under /assets/. Empty disables static files.
	AssetsDir string
}

// Server is a primary adapter that serves the site pages, the JSON API and
// the live carousel endpoint.
type Server struct {
	gallery   usecase.GalleryUseCase
	contact   usecase.ContactUseCase
	carousels usecase.CarouselUseCase
	pages     *renderer
	router    *mux.Router
	server    *http.Server
}

// NewServer creates the HTTP server bound to addr.
func NewServer(deps Deps, addr string) (*Server, error) {
	if deps.Gallery == nil || deps.Contact == nil || deps.Carousels == nil {
		return nil, errors.New("web: gallery, contact and carousel use cases are required")
	}
	pages, err := newRenderer()
	if err != nil {
		return nil, err
	}

	srv := &Server{
		gallery:   deps.Gallery,
		contact:   deps.Contact,
		carousels: deps.Carousels,
		pages:     pages,
		router:    mux.NewRouter(),
	}
	srv.routes(deps.AssetsDir)

	srv.server = &http.Server{
		Addr:              addr,
		Handler:           srv.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv, nil
}

func (s *Server) routes(assetsDir string) {
	r := s.router
	r.Use(loggingMiddleware)

	r.HandleFunc("/", s.handleHome).Methods(http.MethodGet)
	r.HandleFunc("/about", s.handleAbout).Methods(http.MethodGet)
	r.HandleFunc("/services", s.handlePlaceholder("Services")).Methods(http.MethodGet)
	r.HandleFunc("/blog", s.handlePlaceholder("Blog")).Methods(http.MethodGet)
	r.HandleFunc("/gallery", s.handleGallery).Methods(http.MethodGet)
	r.HandleFunc("/contact", s.handleContact).Methods(http.MethodGet)
	r.HandleFunc("/contact", s.handleContactPost).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/gallery", s.handleAPIGallery).Methods(http.MethodGet)
	api.HandleFunc("/contact", s.handleAPIContact).Methods(http.MethodGet)
	api.HandleFunc("/contact/change", s.handleAPIContactChange).Methods(http.MethodPost)
	api.HandleFunc("/contact/blur", s.handleAPIContactBlur).Methods(http.MethodPost)
	api.HandleFunc("/contact/submit", s.handleAPIContactSubmit).Methods(http.MethodPost)

	r.HandleFunc("/ws/carousel", s.handleLiveCarousel).Methods(http.MethodGet)

	if assetsDir != "" {
		r.PathPrefix("/assets/").Handler(http.StripPrefix("/assets/", http.FileServer(http.Dir(assetsDir))))
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start blocks and serves HTTP traffic.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server and unmounts every live carousel.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.server.Shutdown(ctx)
	if cerr := s.carousels.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// session returns the visitor's contact session id, issuing a cookie when
// the request carries none or an expired one.
func (s *Server) session(w http.ResponseWriter, r *http.Request) string {
	var current string
	if c, err := r.Cookie(sessionCookie); err == nil {
		current = c.Value
	}
	sid := s.contact.Ensure(current)
	if sid != current {
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    sid,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return sid
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnknownField), errors.Is(err, domain.ErrSlideOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnknownPage), errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func respondError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logging.Errorf("request failed: %v", err)
	}
	respondJSON(w, status, map[string]string{"error": err.Error()})
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Warnf("encode JSON: %v", err)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Hijack lets the websocket upgrader take over the connection.
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("hijack not supported by %T", r.ResponseWriter)
	}
	r.status = http.StatusSwitchingProtocols
	return h.Hijack()
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logging.L().Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)))
	})
}
