// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package progress

import (
	"os"
	"strings"
	"testing"
	"time"

	spin "github.com/briandowns/spinner"
	"github.com/stretchr/testify/require"
)

type fakeStartStopper struct {
	started int
	stopped int
}

func (f *fakeStartStopper) Start() { f.started++ }
func (f *fakeStartStopper) Stop()  { f.stopped++ }

func TestNewSpinner(t *testing.T) {
	t.Run("it should initialize the spin spinner", func(t *testing.T) {
		buf := new(strings.Builder)
		got := NewSpinner(buf)
		wantedInterval := 125 * time.Millisecond
		if os.Getenv("CI") == "true" {
			wantedInterval = 30 * time.Second
		}

		v, ok := got.spin.(*spin.Spinner)
		require.True(t, ok)

		require.Equal(t, buf, v.Writer)
		require.Equal(t, wantedInterval, v.Delay)
	})
}

func TestSpinner_Start(t *testing.T) {
	fake := &fakeStartStopper{}
	s := &Spinner{
		spin: fake,
	}

	s.Start("start")

	require.Equal(t, 1, fake.started)
}

func TestSpinner_Stop(t *testing.T) {
	fake := &fakeStartStopper{}
	s := &Spinner{
		spin: fake,
	}

	s.Stop("stop")

	require.Equal(t, 1, fake.stopped)
}
