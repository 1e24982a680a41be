// Command memgraph renders memory-graph snapshots to PNG.
//
// Usage:
//
//	memgraph render graph.json -o graph.png --fit
//	memgraph hit graph.json 420 310
//	memgraph watch graph.json -o graph.png --metrics :9090
package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
