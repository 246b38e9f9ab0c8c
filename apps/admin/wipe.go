package main

import (
	"context"
	"fmt"

	"github.com/edutrack/edutrack/storage/entitydb"
)

// wipe deletes one persistence slot. The in-memory working set of a running
// API is untouched; restart it to pick the wipe up.
func (cli *commandLine) wipe(ctx context.Context, kind string) error {
	slot, ok := entitydb.SlotForKind(kind)
	if !ok {
		return fmt.Errorf("unknown entity kind %q", kind)
	}
	if err := cli.store.Delete(ctx, slot); err != nil {
		return err
	}
	fmt.Printf("slot %s wiped\n", slot)
	return nil
}
