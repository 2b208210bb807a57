//go:build mage

// Package main provides build targets for the menagerie project using Mage.
//
// Usage:
//
//	mage build          Compile the menagerie binary to bin/
//	mage install        Install menagerie to GOPATH/bin
//	mage clean          Remove build artifacts
//	mage lint           Run gofmt and golangci-lint
//	mage test:all       Run every test
//	mage test:unit      Run tests without the race detector or cache busting
//	mage test:race      Run every test under the race detector
//	mage test:self      Build, then run the binary's documented examples
package main
