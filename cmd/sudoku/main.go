package main

import "sudoku-engine/internal/cli"

func main() {
	cli.Execute()
}
