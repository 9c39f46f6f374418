// Command snakeoutgen is a local/batch CLI front end for the generator,
// used by tooling and CI smoke checks.
package main

import "github.com/snakeoutgen/generator/cmd/snakeoutgen/cmd"

func main() {
	cmd.Execute()
}
