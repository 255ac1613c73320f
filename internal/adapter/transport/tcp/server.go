package tcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"
)

type Server struct {
	log       *slog.Logger
	addr      string
	timeout   time.Duration
	handshake Handshake
	ln        net.Listener
	wg        sync.WaitGroup
	connsMu   sync.Mutex
	active    map[net.Conn]struct{}
	shutdownT time.Duration
}

// NewServer builds a listener-less server. A zero timeout leaves
// connections without a deadline.
func NewServer(log *slog.Logger, addr string, timeout time.Duration, shutdown time.Duration, handshake Handshake) *Server {
	return &Server{
		log:       log,
		addr:      addr,
		timeout:   timeout,
		shutdownT: shutdown,
		handshake: handshake,
		active:    make(map[net.Conn]struct{}),
	}
}

func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	s.ln = ln
	s.log.Info("server started", "addr", s.addr, "timeout", s.timeout.String())

	errCh := make(chan error, 1)
	go func() { errCh <- s.acceptLoop() }()

	select {
	case <-ctx.Done():

		s.log.Info("shutdown: closing listener")
		_ = s.ln.Close()

		s.connsMu.Lock()
		for c := range s.active {
			_ = c.SetDeadline(time.Now().Add(200 * time.Millisecond))
			if tc, ok := c.(*net.TCPConn); ok {
				_ = tc.CloseWrite()
			}
		}
		s.connsMu.Unlock()

		done := make(chan struct{})
		go func() { s.wg.Wait(); close(done) }()
		select {
		case <-done:
			s.log.Info("shutdown: all connections drained")
		case <-time.After(s.shutdownT):
			s.log.Warn("shutdown: force-close remaining connections")
			s.connsMu.Lock()
			for c := range s.active {
				_ = c.Close()
			}
			s.connsMu.Unlock()
			<-done
		}
		<-errCh
		return nil

	case err := <-errCh:
		return err
	}
}

func (s *Server) acceptLoop() error {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			var ne net.Error
			if errors.As(err, &ne) && ne.Temporary() {
				s.log.Warn("temporary accept error", "err", err)
				time.Sleep(50 * time.Millisecond)
				continue
			}
			return fmt.Errorf("accept: %w", err)
		}
		s.track(conn, true)
		s.wg.Add(1)
		go func(c net.Conn) {
			defer s.wg.Done()
			defer s.track(c, false)
			s.handle(c)
		}(conn)
	}
}

func (s *Server) track(c net.Conn, add bool) {
	s.connsMu.Lock()
	if add {
		s.active[c] = struct{}{}
	} else {
		delete(s.active, c)
	}
	s.connsMu.Unlock()
}

// handle owns conn. Handshake errors end this connection only.
func (s *Server) handle(conn net.Conn) {
	defer conn.Close()
	if s.timeout > 0 {
		_ = conn.SetDeadline(time.Now().Add(s.timeout))
	}
	remote := conn.RemoteAddr().String()

	if err := s.handshake.Serve(NewFrameConn(conn)); err != nil {
		s.log.Warn("handshake failed", "remote", remote, "err", err)
		return
	}
	s.log.Info("success", "remote", remote)
}
