// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package main is the hello world demo server deployed by ebhello.
package main

import (
	"log"

	"github.com/ebhello/ebhello/internal/pkg/server"
)

func main() {
	if err := server.New().Start(); err != nil {
		log.Fatal(err)
	}
}
