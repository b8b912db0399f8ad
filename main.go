package main

import (
	"fmt"
	"os"

	"pharmreg/cmd"
)

func main() {
	if err := cmd.Start(); err != nil {
		fmt.Printf("pharmreg run into an error: %s", err)
		os.Exit(1)
	}
}
