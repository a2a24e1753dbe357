package main

import "os"

func main() {
	err := rootCmd.Execute()
	if logger != nil {
		logger.Sync()
	}
	if err != nil {
		os.Exit(1)
	}
}
