// Package mockapi is an in-process stand-in for the Crescent wallet backend.
// It implements the full route set with in-memory state so the client can be
// exercised locally and in integration tests without a real deployment.
package mockapi

import (
	"net/http"
	"time"

	"crescent-wallet/pkg/envelope"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const ctxAccount = "account"

// Server is the mock backend.
type Server struct {
	store  *store
	tokens *tokenService
	log    zerolog.Logger
	router *gin.Engine
}

// NewServer builds a mock backend with the given JWT settings.
func NewServer(jwtSecret string, jwtExpiry time.Duration, log zerolog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		store:  newStore(),
		tokens: newTokenService(jwtSecret, jwtExpiry),
		log:    log.With().Str("component", "mockapi").Logger(),
	}
	s.router = s.setupRouter()
	return s
}

// Handler exposes the http.Handler, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until the listener fails.
func (s *Server) Run(addr string) error {
	s.log.Info().Str("addr", addr).Msg("mock backend listening")
	return s.router.Run(addr)
}

// MintToken fabricates a bearer token, e.g. an expired one for tests.
func (s *Server) MintToken(userID, walletAddress string) (string, error) {
	return s.tokens.generate(userID, walletAddress)
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestLogger())

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", s.handleRegister)
		auth.POST("/login", s.handleLogin)
	}

	wallet := api.Group("/wallet", s.requireAuth())
	{
		wallet.GET("/profile", s.handleWalletProfile)
		wallet.POST("/balance", s.handleBalance)
	}

	tx := api.Group("/transaction", s.requireAuth())
	{
		tx.GET("/history", s.handleHistory)
		tx.POST("/send", s.handleSend)
		tx.GET("/pending", s.handlePending)
	}

	chain := api.Group("/blockchain")
	{
		chain.GET("/blocks", s.handleBlocks)
		chain.GET("/blocks/:hash", s.handleBlock)
		chain.POST("/mine", s.handleMine)
	}

	reports := api.Group("/reports", s.requireAuth())
	{
		reports.GET("/monthly", s.handleMonthlyReport)
		reports.GET("/zakat", s.handleZakatReport)
	}

	beneficiary := api.Group("/beneficiary", s.requireAuth())
	{
		beneficiary.POST("/add", s.handleAddBeneficiary)
		beneficiary.GET("/list", s.handleListBeneficiaries)
	}

	system := api.Group("/system", s.requireAuth())
	{
		system.GET("/logs", s.handleSystemLogs)
		system.GET("/logs/stats", s.handleLogStats)
		system.GET("/health", s.handleHealth)
	}

	return r
}

// requireAuth validates the bearer token and stashes the account in the
// request context.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		const prefix = "Bearer "
		header := c.GetHeader("Authorization")
		if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
			envelope.Fail(c, http.StatusUnauthorized, "MISSING_TOKEN", "authorization required")
			c.Abort()
			return
		}

		userID, _, err := s.tokens.validate(header[len(prefix):])
		if err != nil {
			envelope.Fail(c, http.StatusUnauthorized, "INVALID_TOKEN", "invalid or expired token")
			c.Abort()
			return
		}
		acc, ok := s.store.accountByID(userID)
		if !ok {
			envelope.Fail(c, http.StatusUnauthorized, "UNKNOWN_USER", "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ctxAccount, acc)
		c.Next()
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}

func currentAccount(c *gin.Context) *account {
	v, _ := c.Get(ctxAccount)
	acc, _ := v.(*account)
	return acc
}
