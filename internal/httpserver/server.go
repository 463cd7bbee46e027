package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sinaw-id/sinaw/internal/catalog"
	"github.com/sinaw-id/sinaw/internal/mentor"
	"github.com/sinaw-id/sinaw/internal/metrics"
	"github.com/sinaw-id/sinaw/internal/nav"
)

var errNotStarted = errors.New("httpserver: Serve called before Start")

// Config wires the API to its collaborators.
type Config struct {
	Addr          string
	Catalog       *catalog.Catalog
	Mentor        mentor.Service
	MentorTimeout time.Duration
	Recorder      metrics.Recorder    // nil records nothing
	Gatherer      prometheus.Gatherer // nil disables /metrics
}

// Server exposes one in-memory session over HTTP. Navigation calls are
// serialised so the controller keeps a single writer.
type Server struct {
	addr     string
	catalog  *catalog.Catalog
	mentor   mentor.Service
	recorder metrics.Recorder
	gatherer prometheus.Gatherer

	mu   sync.Mutex
	nav  *nav.Controller
	chat *mentor.Chat

	server    *http.Server
	listener  net.Listener
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time
}

// NewServer creates a new HTTP API server with a fresh session.
func NewServer(cfg Config) *Server {
	addr := cfg.Addr
	if addr == "" {
		addr = "127.0.0.1:8080"
	}
	rec := cfg.Recorder
	if rec == nil {
		rec = metrics.Nop{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:      addr,
		catalog:   cfg.Catalog,
		mentor:    cfg.Mentor,
		recorder:  rec,
		gatherer:  cfg.Gatherer,
		nav:       nav.New(cfg.Catalog.DemoUser()),
		chat:      mentor.NewChat(cfg.MentorTimeout),
		ctx:       ctx,
		cancel:    cancel,
		startTime: time.Now(),
	}
}

// Handler builds the gin engine with every route registered.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/api/health", s.handleHealth)

	r.GET("/api/session", s.handleSession)
	r.POST("/api/session/splash", s.handleFinishSplash)
	r.POST("/api/login", s.handleLogin)
	r.POST("/api/logout", s.handleLogout)
	r.POST("/api/navigate", s.handleNavigate)
	r.POST("/api/back", s.handleBack)

	r.GET("/api/courses", s.handleCourses)
	r.GET("/api/courses/:id", s.handleCourse)
	r.GET("/api/plans", s.handlePlans)

	r.GET("/api/mentor/messages", s.handleMentorLog)
	r.POST("/api/mentor/messages", s.handleMentorSend)

	if s.gatherer != nil {
		r.GET("/metrics", gin.WrapH(metrics.Handler(s.gatherer)))
	}
	return r
}

// Start binds the listen address. Requests are not served until Serve runs.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)

	s.server = &http.Server{
		Handler:           s.Handler(),
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      90 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.listener = listener
	s.startTime = time.Now()
	return nil
}

// Serve handles requests on the listener bound by Start and blocks until the
// server stops. A graceful Stop returns nil; any other failure is returned.
func (s *Server) Serve() error {
	if s.server == nil || s.listener == nil {
		return errNotStarted
	}
	if err := s.server.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("httpserver: serve: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() error {
	s.cancel()
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.addr
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(s.startTime).String(),
	})
}

func (s *Server) handleSession(c *gin.Context) {
	s.mu.Lock()
	snap := s.nav.Snapshot()
	s.mu.Unlock()
	c.JSON(http.StatusOK, sessionJSON(snap))
}

func (s *Server) handleFinishSplash(c *gin.Context) {
	s.mu.Lock()
	s.nav.FinishSplash()
	snap := s.nav.Snapshot()
	s.mu.Unlock()
	c.JSON(http.StatusOK, sessionJSON(snap))
}

func (s *Server) handleLogin(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Register bool   `json:"register"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	s.mu.Lock()
	var err error
	if req.Register {
		err = s.nav.Register(req.Name)
	} else {
		s.nav.SignIn()
	}
	snap := s.nav.Snapshot()
	s.mu.Unlock()

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sessionJSON(snap))
}

func (s *Server) handleLogout(c *gin.Context) {
	s.mu.Lock()
	s.nav.Logout()
	snap := s.nav.Snapshot()
	s.mu.Unlock()
	s.chat.Reset()
	c.JSON(http.StatusOK, sessionJSON(snap))
}

func (s *Server) handleNavigate(c *gin.Context) {
	var req struct {
		View     string `json:"view" binding:"required"`
		CourseID *int   `json:"course_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body or missing view field"})
		return
	}

	view, err := nav.ParseView(req.View)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var params nav.Params
	if req.CourseID != nil {
		params = nav.CourseParams{CourseID: *req.CourseID}
	}

	s.mu.Lock()
	tr, err := s.nav.Navigate(view, params)
	snap := s.nav.Snapshot()
	s.mu.Unlock()

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.recorder.RecordTransition(tr.String())

	body := sessionJSON(snap)
	body["transition"] = tr.String()
	c.JSON(http.StatusOK, body)
}

func (s *Server) handleBack(c *gin.Context) {
	s.mu.Lock()
	tr := s.nav.GoBack()
	snap := s.nav.Snapshot()
	s.mu.Unlock()
	s.recorder.RecordTransition(tr.String())

	body := sessionJSON(snap)
	body["transition"] = tr.String()
	c.JSON(http.StatusOK, body)
}

func (s *Server) handleCourses(c *gin.Context) {
	courses := s.catalog.Courses()
	if category := c.Query("category"); category != "" {
		courses = s.catalog.ByCategory(category)
	}
	c.JSON(http.StatusOK, gin.H{
		"categories": s.catalog.Categories(),
		"courses":    courses,
	})
}

func (s *Server) handleCourse(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "course id must be an integer"})
		return
	}
	course, ok := s.catalog.Course(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Kursus tidak ditemukan."})
		return
	}
	c.JSON(http.StatusOK, course)
}

func (s *Server) handlePlans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plans": s.catalog.Plans()})
}

func (s *Server) handleMentorLog(c *gin.Context) {
	msgs, busy := s.chat.State()
	c.JSON(http.StatusOK, gin.H{
		"messages": msgs,
		"busy":     busy,
	})
}

func (s *Server) handleMentorSend(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	start := time.Now()
	ex, err := s.chat.Send(c.Request.Context(), s.mentor, req.Text)
	switch {
	case errors.Is(err, mentor.ErrEmptyMessage):
		s.recorder.RecordMentor(metrics.OutcomeRejectedEmpty)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, mentor.ErrBusy):
		s.recorder.RecordMentor(metrics.OutcomeRejectedBusy)
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case errors.Is(err, mentor.ErrDiscarded):
		// The session logged out while the backend was answering.
		s.recorder.RecordMentor(metrics.OutcomeDiscarded)
		c.JSON(http.StatusGone, gin.H{"error": err.Error()})
		return
	}

	s.recorder.RecordMentorLatency(time.Since(start))
	if ex.Fallback {
		s.recorder.RecordMentor(metrics.OutcomeFallback)
	} else {
		s.recorder.RecordMentor(metrics.OutcomeOK)
	}

	c.JSON(http.StatusOK, gin.H{
		"question": ex.Question,
		"reply":    ex.Message,
		"fallback": ex.Fallback,
	})
}

func paramsJSON(p nav.Params) gin.H {
	if id, ok := nav.CourseID(p); ok {
		return gin.H{"course_id": id}
	}
	return gin.H{}
}

func sessionJSON(s nav.Session) gin.H {
	history := make([]gin.H, 0, len(s.History))
	for _, f := range s.History {
		history = append(history, gin.H{"view": f.View, "params": paramsJSON(f.Params)})
	}
	return gin.H{
		"user":       s.User,
		"view":       s.View,
		"params":     paramsJSON(s.Params),
		"history":    history,
		"bottom_nav": nav.BottomNavVisible(s),
	}
}
