package main

import (
	"os"

	"github.com/quizgrid/quizgrid/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
