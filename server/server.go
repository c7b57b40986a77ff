package server

import (
	"context"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"runtime"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/0xERR0R/tldextract/api"
	"github.com/0xERR0R/tldextract/config"
	"github.com/0xERR0R/tldextract/extract"
	"github.com/0xERR0R/tldextract/lists"
	"github.com/0xERR0R/tldextract/log"
	"github.com/0xERR0R/tldextract/metrics"
	"github.com/0xERR0R/tldextract/util"
	"github.com/0xERR0R/tldextract/web"
)

// Server exposes the extractor over HTTP
type Server struct {
	extractor    *extract.Extractor
	cfg          *config.Config
	httpListener net.Listener
	httpServer   *httpServer
	httpMux      *chi.Mux
}

func logger() *logrus.Entry {
	return log.PrefixedLog("server")
}

func getServerAddress(addr string) string {
	if !strings.Contains(addr, ":") {
		addr = fmt.Sprintf(":%s", addr)
	}

	return addr
}

// NewServer creates new server instance with passed config.
// The suffix list is compiled before the listener is opened.
func NewServer(ctx context.Context, cfg *config.Config) (server *Server, err error) {
	compiler := lists.NewCompilerFromConfig(cfg.Downloads)

	extractor, err := extract.New(ctx, cfg.Extract, compiler)
	if err != nil {
		return nil, fmt.Errorf("server creation failed: %w", err)
	}

	return newServer(cfg, extractor)
}

func newServer(cfg *config.Config, extractor *extract.Extractor) (*Server, error) {
	listener, err := net.Listen("tcp", getServerAddress(cfg.HTTP.Addr))
	if err != nil {
		return nil, fmt.Errorf("start http listener on %s failed: %w", cfg.HTTP.Addr, err)
	}

	router := createRouter(cfg)

	metrics.Start(router, cfg.Metrics)

	api.RegisterEndpoint(router, extractor)

	server := &Server{
		extractor:    extractor,
		cfg:          cfg,
		httpListener: listener,
		httpServer:   newHTTPServer("http", router),
		httpMux:      router,
	}

	server.printConfiguration()

	return server, nil
}

// Extractor returns the extractor answering the API requests
func (s *Server) Extractor() *extract.Extractor {
	return s.extractor
}

// Addr returns the address the server listens on
func (s *Server) Addr() net.Addr {
	return s.httpListener.Addr()
}

func createRouter(cfg *config.Config) *chi.Mux {
	router := chi.NewRouter()

	configureCorsHandler(router, cfg.HTTP.AllowedOrigins())

	configureDebugHandler(router)

	configureRootHandler(cfg, router)

	return router
}

func configureRootHandler(cfg *config.Config, router *chi.Mux) {
	t := template.Must(template.New("index").Parse(web.IndexTmpl))

	router.Get("/", func(writer http.ResponseWriter, request *http.Request) {
		type HandlerLink struct {
			URL   string
			Title string
		}

		type PageData struct {
			Links       []HandlerLink
			Version     string
			BuildTime   string
			ExtractPath string
		}

		pd := PageData{
			Version:     util.Version,
			BuildTime:   util.BuildTime,
			ExtractPath: api.PathExtract,
			Links: []HandlerLink{
				{
					URL:   api.PathSuffixListStatus,
					Title: "Suffix list status",
				},
				{
					URL:   "/debug/",
					Title: "Go Profiler",
				},
			},
		}

		if cfg.Metrics.Enable {
			pd.Links = append(pd.Links, HandlerLink{
				URL:   cfg.Metrics.Path,
				Title: "Prometheus endpoint",
			})
		}

		err := t.Execute(writer, pd)
		if err != nil {
			logger().Error("can't write index template: ", err)
			writer.WriteHeader(http.StatusInternalServerError)
		}
	})
}

func configureDebugHandler(router *chi.Mux) {
	router.Mount("/debug", middleware.Profiler())
}

func configureCorsHandler(router *chi.Mux, allowedOrigins []string) {
	const corsMaxAge = 5 * 60

	crs := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           corsMaxAge,
	})
	router.Use(crs.Handler)
}

func (s *Server) printConfiguration() {
	logger().Info("current configuration:")

	s.cfg.LogConfig(logger())

	status := s.extractor.Status()
	logger().Infof("- suffix list: %d public rules, %d private rules", status.PublicRules, status.PrivateRules)
	logger().Infof("- HTTP listening on %s", s.httpListener.Addr())
	logger().Infof("- hostname: %s", util.HostnameString())

	var m runtime.MemStats

	runtime.ReadMemStats(&m)

	logger().WithFields(logrus.Fields{
		"heap_alloc_mb": toMB(m.HeapAlloc),
		"sys_mb":        toMB(m.Sys),
		"num_cpu":       runtime.NumCPU(),
		"go_version":    runtime.Version(),
	}).Info("runtime information")
}

func toMB(b uint64) uint64 {
	return b >> 20
}

// Start starts the server, serve errors are sent to `errCh`
func (s *Server) Start(ctx context.Context, errCh chan<- error) {
	logger().Info("Starting server")

	go func() {
		logger().Infof("%s server is up and running on addr/port %s", s.httpServer, s.httpListener.Addr())

		if err := s.httpServer.Serve(ctx, s.httpListener); err != nil {
			errCh <- fmt.Errorf("start %s listener failed: %w", s.httpServer, err)
		}
	}()

	registerSignalTriggers(ctx, s)
}

// Stop stops the server
func (s *Server) Stop(ctx context.Context) error {
	logger().Info("Stopping server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("stop %s listener failed: %w", s.httpServer, err)
	}

	return nil
}
