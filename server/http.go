package server

import (
	"context"
	"errors"
	stdlog "log"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	readHeaderTimeout = 20 * time.Second
	readTimeout       = 20 * time.Second
	writeTimeout      = 60 * time.Second
)

// httpServer wraps `http.Server` so it stops with the server's context
// and reports its internal errors through logrus.
type httpServer struct {
	inner http.Server

	name string
}

func newHTTPServer(name string, handler http.Handler) *httpServer {
	errorLog := logger().WithField("listener", name).WriterLevel(logrus.WarnLevel)

	return &httpServer{
		inner: http.Server{
			Handler:           handler,
			ReadTimeout:       readTimeout,
			ReadHeaderTimeout: readHeaderTimeout,
			WriteTimeout:      writeTimeout,
			ErrorLog:          stdlog.New(errorLog, "", 0),
		},

		name: name,
	}
}

func (s *httpServer) String() string {
	return s.name
}

// Serve accepts connections on `l` until `ctx` is done or Shutdown is called.
// A regular stop is not an error.
func (s *httpServer) Serve(ctx context.Context, l net.Listener) error {
	stop := context.AfterFunc(ctx, func() {
		_ = s.inner.Close()
	})
	defer stop()

	if err := s.inner.Serve(l); !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Shutdown waits for active requests, at most until `ctx` is done.
func (s *httpServer) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
