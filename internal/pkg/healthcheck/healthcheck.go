// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package healthcheck verifies that a deployed endpoint answers HTTP requests.
package healthcheck

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultInterval = 3 * time.Second
	clientTimeout   = 10 * time.Second
)

type httpGetter interface {
	Get(url string) (*http.Response, error)
}

// Checker polls an HTTP endpoint until it responds with 200 OK.
type Checker struct {
	client   httpGetter
	interval time.Duration
}

// New returns a Checker with a bounded per-request timeout.
func New() *Checker {
	return &Checker{
		client: &http.Client{
			Timeout: clientTimeout,
		},
		interval: defaultInterval,
	}
}

// Wait polls the url until it returns 200 OK or the context expires.
// Connection errors are expected while the environment's DNS record
// propagates, so they only fail the check once the context is done.
func (c *Checker) Wait(ctx context.Context, url string) error {
	for {
		ok, err := c.check(url)
		if ok {
			return nil
		}
		select {
		case <-ctx.Done():
			if err != nil {
				return fmt.Errorf("health check %s: %w", url, err)
			}
			return fmt.Errorf("health check %s: %w", url, ctx.Err())
		case <-time.After(c.interval):
		}
	}
}

func (c *Checker) check(url string) (bool, error) {
	resp, err := c.client.Get(url)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("unexpected response status %s", resp.Status)
	}
	return true, nil
}
