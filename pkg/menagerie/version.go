// Package menagerie holds build-level metadata for the menagerie module.
package menagerie

// Version is the released version of the menagerie CLI and library.
const Version = "0.1.0"
