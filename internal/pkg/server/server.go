// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package server implements the hello world responder: a fixed-port HTTP
// server that answers every request with the same HTML page.
package server

import (
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"strconv"
)

// Port is the port the responder listens on. It is a compile-time constant:
// the demo binary reads no flags, environment variables, or config files.
const Port = 8080

const body = "<html><body><h1>Hello World!</h1></body></html>"

// Server serves the fixed hello world page on every request.
type Server struct {
	addr string
	ln   net.Listener
}

// New returns a Server that listens on all interfaces on Port.
func New() *Server {
	return &Server{
		addr: fmt.Sprintf(":%d", Port),
	}
}

// Start binds the listening socket, announces the port, and serves until the
// process exits. A bind failure, such as the port being already in use, is
// returned to the caller; there is no retry.
func (s *Server) Start() error {
	if err := s.bind(); err != nil {
		return err
	}
	// The listener is bound before the line prints, so the server is
	// reachable as soon as the announcement is visible.
	log.Printf("Hello World HTTP Server running on port %d", Port)
	return http.Serve(s.ln, Handler())
}

// Handler returns the responder's handler: status 200 and the fixed page for
// any method on any path.
func Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, body)
	})
}

func (s *Server) bind() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("bind %s: %w", s.addr, err)
	}
	s.ln = ln
	return nil
}
