// Package main provides the torusnet command, which builds unidirectional
// torus networks and inspects their routing functions.
package main

import "github.com/sarchlab/toruscredit/torusnet/cmd"

func main() {
	cmd.Execute()
}
