// Command vocalise rewrites numerals, clock times, calendar dates and
// arithmetic expressions in text as spoken words, preparing it for
// speech synthesis.
package main

import (
	"github.com/vocalise-labs/vocalise-cli/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
