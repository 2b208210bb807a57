//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"github.com/mesh-intelligence/menagerie/internal/locale"
)

// Test groups test targets.
type Test mg.Namespace

// All runs every test verbosely.
func (Test) All() error {
	return sh.RunV(binGo, "test", "-v", "./...")
}

// Unit runs every test with the default cache.
func (Test) Unit() error {
	return sh.RunV(binGo, "test", "./...")
}

// Race runs every test under the race detector.
func (Test) Race() error {
	return sh.RunV(binGo, "test", "-race", "-count=1", "./...")
}

// Self builds the binary and runs its documented examples in each
// shipped locale. A failing example makes the binary exit non-zero, which
// fails the target.
func (Test) Self() error {
	mg.Deps(Build)
	for _, loc := range locale.Supported() {
		if err := sh.RunV(binaryPath, "selftest", "--locale", loc); err != nil {
			return err
		}
	}
	return nil
}
