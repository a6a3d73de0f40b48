package http

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/CatGamer7/rns/pool"
)

const instrumentationName = "github.com/CatGamer7/rns/http"

var (
	tracer = otel.Tracer(instrumentationName)
	meter  = otel.Meter(instrumentationName)

	connCnt  metric.Int64Counter
	replyCnt metric.Int64Counter
)

func init() {
	var err error
	connCnt, err = meter.Int64Counter("rns.server.connections",
		metric.WithDescription("The number of connections served"),
		metric.WithUnit("{connection}"))
	if err != nil {
		panic(err)
	}

	replyCnt, err = meter.Int64Counter("rns.server.replies",
		metric.WithDescription("The number of replies by status code"),
		metric.WithUnit("{reply}"))
	if err != nil {
		panic(err)
	}
}

// Server ties the pipeline together: an accept loop feeds connections to a
// fixed worker pool, and each pooled job builds the request, runs the hooks,
// resolves the route and invokes the handler.
//
// The hook chain is fixed: authenticate, then throttle, then route
// resolution. Both hooks default to pass-through when nil.
type Server struct {
	Name   string
	Router *Router

	Authenticate Hook
	Throttle     Hook

	pool   *pool.Pool
	closed atomic.Bool

	mu       sync.Mutex
	listener net.Listener
}

// NewServer creates a server with an empty route table and a pool of the
// given number of workers. Routes and hooks are registered before serving
// begins; the table is treated as read-only afterwards.
func NewServer(name string, workers int) *Server {
	return &Server{
		Name:   name,
		Router: NewRouter(),
		pool:   pool.New(workers),
	}
}

func (s *Server) ListenAndServe(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	slog.Info("listening", "server", s.Name, "addr", listener.Addr().String())
	return s.Serve(listener)
}

// Serve accepts connections and submits each one to the worker pool. It
// returns nil after Shutdown closes the listener.
func (s *Server) Serve(listener net.Listener) error {
	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	if s.closed.Load() {
		listener.Close()
		return nil
	}

	for {
		conn, err := listener.Accept()
		if err != nil {
			if s.closed.Load() {
				return nil
			}
			return err
		}

		s.pool.Submit(func() {
			s.ServeConn(conn)
		})
	}
}

// ServeConn handles a single connection to completion: build, hooks, route
// resolution, handler, reply. Protocol and transport failures get a
// best-effort canned reply before the connection is abandoned.
func (s *Server) ServeConn(conn net.Conn) {
	defer conn.Close()

	id := uuid.New()
	ctx, span := tracer.Start(context.Background(), "serve")
	defer span.End()

	connCnt.Add(ctx, 1)

	req, err := BuildRequest(conn)
	if err != nil {
		status := statusFromError(err)
		slog.Warn("request build failed", "server", s.Name, "conn", id, "status", status.Code)
		s.abandon(ctx, conn, id, status)
		return
	}

	span.SetAttributes(
		attribute.String("http.request.method", req.Method),
		attribute.String("url.path", req.URI),
	)
	slog.Debug("request built", "server", s.Name, "conn", id, "resource", req.Resource())

	for _, hook := range []Hook{s.Authenticate, s.Throttle} {
		if hook == nil {
			continue
		}
		if err := hook(req); err != nil {
			status := statusFromError(err)
			slog.Info("request rejected by hook", "server", s.Name, "conn", id, "status", status.Code)
			s.abandon(ctx, conn, id, status)
			return
		}
	}

	handler, err := s.Router.Resolve(req.URI, req.Method)
	if err != nil {
		status := statusFromError(err)
		slog.Info("no route", "server", s.Name, "conn", id, "resource", req.Resource(), "status", status.Code)
		s.abandon(ctx, conn, id, status)
		return
	}

	handler(req)
	replyCnt.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "handled")))
}

// Shutdown closes the listener and drains the worker pool, waiting for
// in-flight connections to finish or ctx to expire, whichever comes first.
func (s *Server) Shutdown(ctx context.Context) error {
	s.closed.Store(true)
	s.mu.Lock()
	if s.listener != nil {
		s.listener.Close()
	}
	s.mu.Unlock()

	drained := make(chan struct{})
	go func() {
		s.pool.Close()
		close(drained)
	}()

	select {
	case <-drained:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// abandon writes a canned status-only reply before the connection is given
// up on. The write is best-effort: the connection may already be broken, so
// a failure here is logged and swallowed, never escalated.
func (s *Server) abandon(ctx context.Context, conn net.Conn, id uuid.UUID, status Status) {
	replyCnt.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", "canned"),
		attribute.Int("status", status.Code),
	))

	if err := RespondStatus(VersionHTTP11, status, conn); err != nil {
		slog.Debug("canned reply failed", "server", s.Name, "conn", id, "error", err)
	}
}

// statusFromError unwraps the pipeline's typed Status from err, falling
// back to 500 for anything untyped.
func statusFromError(err error) Status {
	var status Status
	if errors.As(err, &status) {
		return status
	}
	return CannedStatus(StatusInternalServerError)
}
