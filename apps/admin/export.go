package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// export writes every collection to a single JSON document.
func (cli *commandLine) export(path string) error {
	data, err := json.MarshalIndent(cli.db.Dump(), "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", path)
	return nil
}
