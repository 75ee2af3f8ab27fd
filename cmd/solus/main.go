package main

import (
	"fmt"
	"log"
	"os"

	"github.com/goodieshq/solus/internal/cli"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("solus %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	if os.Getenv("SOLUS_LOG_LEVEL") == "debug" {
		log.Printf("solus v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
