package main

import (
	"os"

	"github.com/YashRawat0947/SIH-2025/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
