// Command schema emits the JSON schema for the newsmix configuration file,
// used by editors for config.yml validation and completion.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/invopop/jsonschema"

	"newsmix/pkg/config"
)

func main() {
	schema := jsonschema.Reflect(&config.Config{})

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		log.Fatalf("failed to marshal schema: %v", err)
	}

	outputPath := "schema.json"
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}

	// "-" writes to stdout for piping into other tools
	if outputPath == "-" {
		fmt.Println(string(data))
		return
	}

	if err := os.WriteFile(outputPath, data, 0o600); err != nil {
		log.Fatalf("failed to write schema file: %v", err)
	}
	fmt.Printf("schema written to %s\n", outputPath)
}
