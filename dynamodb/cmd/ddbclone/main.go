// ddbclone copies the schema of a DynamoDB table into a new table.
//
// # Installation
//
//	go install github.com/acksell/ddbclone/dynamodb/cmd/ddbclone@latest
//
// # Commands
//
//	ddbclone clone <source> <dest>   Create dest with the schema of source
//	ddbclone list                    List tables
//	ddbclone version                 Print the version
//
// # Quick Start
//
// Clone a table in another region or profile:
//
//	ddbclone clone Orders OrdersCopy --region eu-west-1 --profile staging
//
// Preview the create request without creating anything:
//
//	ddbclone clone Orders OrdersCopy --dry-run
//
// Try it offline against a local catalog seeded from a schema file:
//
//	ddbclone clone Orders OrdersCopy --local ./data --seed schema.yaml
//
// Only the table definition is copied. Items, tags, streams and TTL
// settings are not.
package main

import (
	"fmt"
	"io"
	"os"
)

const version = "0.1.0"

func main() {
	os.Exit(run(&app{}, os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(a *app, args []string, stdout, stderr io.Writer) int {
	defer a.close()

	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "ddbclone: %v\n", err)
		return 1
	}
	return 0
}
