// Command folderchat formats folder chat messages and saved chat histories.
package main

import "github.com/diogo/folderchat/internal/commands"

func main() {
	commands.Execute()
}
