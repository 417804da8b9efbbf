package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rezonia/payref/internal/barcode"
	money "github.com/rezonia/payref/internal/decimal"
	"github.com/rezonia/payref/internal/model"
	"github.com/rezonia/payref/internal/reference"
)

const dateLayout = "2006-01-02"

// Config holds server configuration
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
	Logger       *slog.Logger
}

// Server represents the HTTP API server
type Server struct {
	config *Config
	router *gin.Engine
	logger *slog.Logger
}

// NewServer creates a new API server
func NewServer(config *Config) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("module", "http")

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger(logger))

	s := &Server{
		config: config,
		router: router,
		logger: logger,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", s.handleHealth)

	// API v1
	v1 := s.router.Group("/api/v1")
	{
		refs := v1.Group("/references")
		refs.POST("/domestic", s.handleDomestic)
		refs.POST("/iso", s.handleISO)
		refs.POST("/validate", s.handleValidate)

		v1.POST("/barcode", s.handleBarcode)
		v1.POST("/barcode/decode", s.handleDecode)
	}
}

// Run starts the HTTP server and shuts it down when ctx is cancelled
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "address", s.config.Address)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleDomestic(c *gin.Context) {
	var req DomesticRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, "invalid request body", err)
		return
	}

	ref, err := reference.GenerateDomesticString(req.Base)
	if err != nil {
		s.codecError(c, "generate domestic reference", err)
		return
	}

	c.JSON(http.StatusOK, ReferenceResponse{
		Reference: ref,
		Formatted: reference.Format(ref),
		Kind:      string(model.ReferenceDomestic),
	})
}

func (s *Server) handleISO(c *gin.Context) {
	var req ISORequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, "invalid request body", err)
		return
	}

	if (req.Payload == "") == (req.Domestic == "") {
		s.badRequest(c, "exactly one of payload or domestic is required", nil)
		return
	}

	var (
		ref string
		err error
	)
	if req.Domestic != "" {
		ref, err = reference.ISOFromDomestic(req.Domestic)
	} else {
		ref, err = reference.GenerateISO(req.Payload)
	}
	if err != nil {
		s.codecError(c, "generate iso reference", err)
		return
	}

	c.JSON(http.StatusOK, ReferenceResponse{
		Reference: ref,
		Formatted: reference.Format(ref),
		Kind:      string(model.ReferenceISO),
	})
}

func (s *Server) handleValidate(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, "invalid request body", err)
		return
	}

	kind, valid := reference.Validate(req.Reference)
	response := ValidationResponse{
		Reference: reference.Compact(req.Reference),
		Kind:      string(kind),
		Valid:     valid,
	}
	if valid {
		response.Formatted = reference.Format(req.Reference)
	}

	c.JSON(http.StatusOK, response)
}

func (s *Server) handleBarcode(c *gin.Context) {
	var req BarcodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, "invalid request body", err)
		return
	}

	amount, err := money.FromString(req.Amount)
	if err != nil {
		s.badRequest(c, "invalid amount", err)
		return
	}

	var due *time.Time
	if req.Due != "" {
		d, err := time.Parse(dateLayout, req.Due)
		if err != nil {
			s.badRequest(c, "invalid due date, expected YYYY-MM-DD", err)
			return
		}
		due = &d
	}

	code, err := barcode.Encode(req.IBAN, req.Reference, amount, due)
	if err != nil {
		s.codecError(c, "encode barcode", err)
		return
	}

	c.JSON(http.StatusOK, BarcodeResponse{
		Barcode: code,
		Version: int(barcode.VersionOf(req.Reference)),
	})
}

func (s *Server) handleDecode(c *gin.Context) {
	var req DecodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, "invalid request body", err)
		return
	}

	slip, version, err := barcode.Decode(req.Barcode)
	if err != nil {
		s.codecError(c, "decode barcode", err)
		return
	}

	c.JSON(http.StatusOK, DecodeResponse{
		Version:   int(version),
		IBAN:      slip.IBAN,
		Reference: slip.Reference,
		Amount:    money.FormatEUR(slip.Amount),
		Due:       slip.DueString(),
	})
}
