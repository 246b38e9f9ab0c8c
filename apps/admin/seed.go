package main

import (
	"context"
	"fmt"

	"github.com/edutrack/edutrack/storage/entitydb"
	"github.com/edutrack/edutrack/storage/kv"
)

// seed loads the demo fixture set. Existing data is only overwritten with -force.
func (cli *commandLine) seed(ctx context.Context, force bool) error {
	if !force {
		slot, _ := entitydb.SlotForKind("students")
		if _, err := cli.store.Get(ctx, slot); err == nil {
			return fmt.Errorf("existing data found; re-run with -force to overwrite")
		} else if err != kv.ErrNotFound {
			return err
		}
	}
	if err := cli.db.Seed(ctx); err != nil {
		return err
	}
	fmt.Println("fixtures seeded")
	return nil
}
