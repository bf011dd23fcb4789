// Command astgen builds source files from YAML tree documents, checks them
// against a target language version and inspects the trees they describe.
package main

import "os"

func main() {
	if err := newRootCommand(newGlobalState()).Execute(); err != nil {
		os.Exit(1)
	}
}
