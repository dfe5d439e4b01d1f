package main

import "github.com/theirongolddev/budgettrack/cmd"

func main() {
	cmd.Execute()
}
