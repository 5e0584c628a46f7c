// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "ownlists"
	binaryDir  = "bin"
	cmdDir     = "./cmd/ownlists"
)

// smokeScript exercises push, peek, len and an empty pop.
var smokeScript = []string{"push", "1", "push", "2", "peek", "len", "pop", "pop", "pop", "empty"}

// Build compiles the ownlists binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}

// Smoke builds the binary and replays smokeScript against each growable
// variant in a throwaway config and data directory.
func Smoke() error {
	mg.Deps(Build)
	tmp, err := os.MkdirTemp("", "ownlists-smoke-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmp)

	bin := filepath.Join(binaryDir, binaryName)
	env := map[string]string{
		"OWNLISTS_CONFIG_DIR": filepath.Join(tmp, "config"),
		"OWNLISTS_DATA_DIR":   filepath.Join(tmp, "data"),
	}
	if err := sh.RunWithV(env, bin, "init"); err != nil {
		return err
	}
	for _, variant := range []string{"borrowed", "cell", "owned"} {
		args := append([]string{"run", "--variant", variant}, smokeScript...)
		if err := sh.RunWithV(env, bin, args...); err != nil {
			return fmt.Errorf("smoke %s: %w", variant, err)
		}
	}
	return sh.RunWithV(env, bin, "history")
}
