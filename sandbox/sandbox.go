// Package sandbox implements an in-memory, SendPost-compatible HTTP API.
//
// It answers the account and sub-account endpoints the workflow uses,
// enforces the two API key headers, stores sent messages under random
// message ids and derives daily stats from them. Nothing is delivered.
package sandbox

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sendpost/sendpost-go/logger"
	"github.com/sendpost/sendpost-go/types"
)

// BasePath is where the API is mounted, matching the public base URL.
const BasePath = "/api/v1"

type Config struct {
	// AccountApiKey is the only accepted X-Account-ApiKey value.
	// When empty, any non-empty key is accepted.
	AccountApiKey string

	// SubAccountApiKey, when set, seeds a sub-account using this key.
	SubAccountApiKey string

	// IPs are the public addresses allocated to the account.
	IPs []string

	Now    func() time.Time
	Logger logger.Logger
}

// DefaultIPs are allocated when Config.IPs is nil.
var DefaultIPs = []string{"192.0.2.10", "192.0.2.11"}

type Server struct {
	store  *MemoryStore
	router chi.Router
	logger logger.Logger
}

func New(cfg Config) *Server {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = &logger.Noop{}
	}
	if cfg.IPs == nil {
		cfg.IPs = DefaultIPs
	}

	store := newMemoryStore(cfg.Now)
	if cfg.SubAccountApiKey != "" {
		store.AddSubAccount("Sandbox Sub-Account", cfg.SubAccountApiKey, types.SubAccountTypeRegular)
	}
	for _, ip := range cfg.IPs {
		store.AddIP(ip)
	}

	h := &handler{
		store:         store,
		accountApiKey: cfg.AccountApiKey,
		logger:        cfg.Logger,
	}
	r := chi.NewRouter()
	r.Route(BasePath, h.routes)

	return &Server{store: store, router: r, logger: cfg.Logger}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) Store() *MemoryStore {
	return s.store
}

// Serve answers requests on l until ctx is done, then shuts down.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	srv := &http.Server{
		Handler:      s,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("sandbox: listening on %s", l.Addr())
		errCh <- srv.Serve(l)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.logger.Infof("sandbox: shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
