// Command menagerie runs the entity examples and exposes each entity
// behavior as a subcommand.
package main

import "github.com/mesh-intelligence/menagerie/internal/cli"

func main() {
	cli.Execute()
}
