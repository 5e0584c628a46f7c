// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main provides build targets for the ownlists project using Mage.
//
// Usage:
//
//	mage build        Compile the ownlists binary to bin/
//	mage install      Install ownlists to GOPATH/bin
//	mage clean        Remove build artifacts
//	mage lint         Run golangci-lint
//	mage test:all     Run every test
//	mage test:unit    Run tests without the large-list cases (-short)
//	mage test:race    Run every test under the race detector
//	mage test:bench   Run the list benchmarks
//	mage smoke        Build, then replay one script on every variant
//	mage stats        Print Go LOC per package as JSON
package main
