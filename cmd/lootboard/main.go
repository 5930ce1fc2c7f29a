// Command lootboard tracks loot held by up to four players.
package main

import (
	"os"

	"github.com/mesh-intelligence/lootboard/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
