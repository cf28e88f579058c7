package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"moabook/cardsheet/cmd/categorize"
	"moabook/cardsheet/cmd/convert"
	"moabook/cardsheet/cmd/root"
	"moabook/cardsheet/cmd/rules"
)

func init() {
	// Load environment variables before anything reads them. Config and
	// logging setup happen in the root command's PersistentPreRunE.
	loadEnvSilently()

	root.Cmd.AddCommand(convert.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(rules.Cmd)
}

// loadEnvSilently loads environment variables without logging anything.
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}

	_ = godotenv.Load(envFile)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
