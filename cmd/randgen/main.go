// Randgen implements the randgen command line tool.
package main

import "github.com/oasisprotocol/randgen/cmd/randgen/cmd"

func main() {
	cmd.Execute()
}
