// Command recordctl reads a YAML document into a record and queries or edits it.
package main

import (
	"context"

	"github.com/scott-cotton/cli"

	"openrecord/cmd/recordctl/commands"
)

func main() {
	cli.MainContext(context.Background(), commands.Root())
}
