// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandler(t *testing.T) {
	wantedBody := "<html><body><h1>Hello World!</h1></body></html>"

	testCases := map[string]struct {
		method string
		path   string
	}{
		"GET on the root path": {
			method: http.MethodGet,
			path:   "/",
		},
		"POST on an arbitrary path": {
			method: http.MethodPost,
			path:   "/anything/path",
		},
		"DELETE on a nested path": {
			method: http.MethodDelete,
			path:   "/a/b/c?d=e",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			// WHEN
			Handler().ServeHTTP(w, req)

			// THEN
			require.Equal(t, http.StatusOK, w.Code)
			require.Equal(t, wantedBody, w.Body.String())
			require.Equal(t, strconv.Itoa(len(wantedBody)), w.Header().Get("Content-Length"))
		})
	}
}

func TestServer_Start_PortInUse(t *testing.T) {
	// GIVEN a server that already owns a port.
	first := &Server{addr: "127.0.0.1:0"}
	require.NoError(t, first.bind())
	defer first.ln.Close()

	// WHEN a second server binds the same port.
	second := &Server{addr: first.ln.Addr().String()}
	err := second.bind()

	// THEN
	require.Error(t, err)
	require.Contains(t, err.Error(), "bind")
}

func TestServer_Responds(t *testing.T) {
	srv := httptest.NewServer(Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, int64(len(body)), resp.ContentLength)
}
