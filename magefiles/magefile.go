// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build mage

// Package main provides build targets for the lootboard project using Mage.
//
// Usage:
//
//	mage build       Compile lootboard binary to bin/
//	mage test:all    Run all tests
//	mage test:unit   Run tests without the race detector, short mode
//	mage test:cover  Run all tests and write coverage.out
//	mage lint        Run golangci-lint
//	mage clean       Remove build artifacts
//	mage install     Install lootboard to GOPATH/bin
package main

const (
	binGo      = "go"
	binaryName = "lootboard"
	binaryDir  = "bin"
	cmdDir     = "./cmd/lootboard"
	cliPkg     = "github.com/mesh-intelligence/lootboard/internal/cli"
)
