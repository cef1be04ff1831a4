package picoserver

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"time"

	"github.com/google/uuid"

	"github.com/tony-montemuro/picoserver/internal/config"
	"github.com/tony-montemuro/picoserver/message"
)

// Server answers one connection at a time: parse, route, write, close.
type Server struct {
	Config *config.Config
	Router Router
	Logger *log.Logger
}

func (s *Server) logger() *log.Logger {
	if s.Logger == nil {
		return log.Default()
	}
	return s.Logger
}

// Listen binds the configured address. When the port is taken it moves on to the next one,
// up to PortAttempts ports in total.
func (s *Server) Listen() (net.Listener, error) {
	port := s.Config.Server.Port
	var err error

	for i := 0; i < s.Config.Server.PortAttempts; i++ {
		var ln net.Listener
		ln, err = net.Listen("tcp", s.Config.ServerAddress(port))
		if err == nil {
			return ln, nil
		}

		s.logger().Printf("could not listen on port %d: %v", port, err)
		port++
	}

	return nil, fmt.Errorf("no free port after %d attempts: %w", s.Config.Server.PortAttempts, err)
}

// Serve accepts connections on ln until ctx is cancelled. Cancellation closes ln and
// Serve then returns nil.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	stop := context.AfterFunc(ctx, func() {
		ln.Close()
	})
	defer stop()

	s.logger().Printf("listening for connections on %s", ln.Addr())
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				return fmt.Errorf("listener closed: %w", err)
			}

			s.logger().Printf("could not accept connection: %v", err)
			continue
		}

		s.handle(conn)
	}
}

func (s *Server) handle(conn net.Conn) {
	defer conn.Close()
	id := uuid.New()

	res := s.respond(conn, id)

	if s.Config.Server.WriteTimeout > 0 {
		conn.SetWriteDeadline(time.Now().Add(s.Config.Server.WriteTimeout))
	}

	n, err := res.WriteTo(conn)
	if err != nil {
		s.logger().Printf("[%s] could not write response: %v", id, err)
		return
	}

	s.logger().Printf("[%s] %d %s (%d bytes)", id, res.Code, message.StatusText(res.Code), n)
}

func (s *Server) respond(conn net.Conn, id uuid.UUID) message.Response {
	parser := message.RequestParser{Connection: conn, Timeout: s.Config.Server.ReadTimeout}

	req, err := parser.Parse()
	if err != nil {
		s.logger().Printf("[%s] could not parse request from %s: %v", id, conn.RemoteAddr(), err)
		return failure(err)
	}

	s.logger().Printf("[%s] %s %s %s", id, req.Method(), req.Path(), req.Protocol())

	res, err := s.Router.Route(req)
	if err != nil {
		s.logger().Printf("[%s] could not route %s: %v", id, req.Path(), err)
		return failure(err)
	}

	return res
}

func failure(err error) message.Response {
	return message.NewResponse(message.StatusInternalServerError, contentTypeText, fmt.Appendf(nil, "UUUUPS: %s", err.Error()))
}
