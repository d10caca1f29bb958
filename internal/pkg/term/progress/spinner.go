// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package progress provides an indicator that a long operation is taking place.
package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	spin "github.com/briandowns/spinner"
)

type startStopper interface {
	Start()
	Stop()
}

// Spinner wraps a terminal spinner with a label.
type Spinner struct {
	spin startStopper
}

// NewSpinner returns a Spinner that writes to the given writer.
func NewSpinner(w io.Writer) *Spinner {
	interval := 125 * time.Millisecond
	if os.Getenv("CI") == "true" {
		// Reduce the frequency of refreshes to avoid flooding CI logs.
		interval = 30 * time.Second
	}
	s := spin.New(charset, interval, spin.WithHiddenCursor(true))
	s.Writer = w
	return &Spinner{
		spin: s,
	}
}

// Start starts the spinner suffixed with a label.
func (s *Spinner) Start(label string) {
	s.suffix(fmt.Sprintf(" %s", label))
	s.spin.Start()
}

// Stop stops the spinner and replaces it with a label.
func (s *Spinner) Stop(label string) {
	s.finalMSG(fmt.Sprintln(label))
	s.spin.Stop()
}

func (s *Spinner) suffix(label string) {
	if spinner, ok := s.spin.(*spin.Spinner); ok {
		spinner.Lock()
		spinner.Suffix = label
		spinner.Unlock()
	}
}

func (s *Spinner) finalMSG(msg string) {
	if spinner, ok := s.spin.(*spin.Spinner); ok {
		spinner.Lock()
		spinner.FinalMSG = msg
		spinner.Unlock()
	}
}
