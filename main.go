package main

import (
	_ "go.uber.org/automaxprocs"

	"marketing-ai-hub/backend/internal/cli"
)

func main() {
	cli.Execute()
}
