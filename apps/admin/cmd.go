package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/edutrack/edutrack/storage/entitydb"
	"github.com/edutrack/edutrack/storage/kv"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	store kv.Store
	db    *entitydb.DB
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  seed [-force]        - load the demo fixture set (refuses to overwrite without -force)")
	fmt.Println("  export -out FILE     - dump every collection to a JSON file")
	fmt.Println("  wipe -kind KIND      - delete one persistence slot (students, faculty, courses,")
	fmt.Println("                         attendance, grades, fees, activity, user)")
}

func (cli *commandLine) run(ctx context.Context, args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	seedForce := seedCmd.Bool("force", false, "Overwrite existing data.")

	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	exportOut := exportCmd.String("out", "", "Path of the JSON file to write.")

	wipeCmd := flag.NewFlagSet("wipe", flag.ExitOnError)
	wipeKind := wipeCmd.String("kind", "", "Entity kind whose slot to delete.")

	switch args[1] {
	case "seed":
		if err := seedCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.seed(ctx, *seedForce)
	case "export":
		if err := exportCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *exportOut == "" {
			exportCmd.Usage()
			return errHelp
		}
		return cli.export(*exportOut)
	case "wipe":
		if err := wipeCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *wipeKind == "" {
			wipeCmd.Usage()
			return errHelp
		}
		return cli.wipe(ctx, *wipeKind)
	default:
		cli.printUsage()
		return errHelp
	}
}
