package main

import (
	"context"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/edutrack/edutrack/core"
	"github.com/edutrack/edutrack/storage/entitydb"
	"github.com/edutrack/edutrack/storage/kv"
	memorykv "github.com/edutrack/edutrack/storage/kv/memory"
	pgkv "github.com/edutrack/edutrack/storage/kv/postgres"
	rediskv "github.com/edutrack/edutrack/storage/kv/redis"
	sqlitekv "github.com/edutrack/edutrack/storage/kv/sqlite"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	ctx := context.Background()

	store, err := openStore(ctx)
	errAndDie(err)

	// Load without seeding; the seed command decides when fixtures go in.
	db, err := entitydb.Load(ctx, store, core.NewConsoleLogger(logger))
	errAndDie(err)
	defer db.Close()

	cli := commandLine{
		store: store,
		db:    db,
	}
	if err := cli.run(ctx, os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func openStore(ctx context.Context) (kv.Store, error) {
	backend := core.Conf.GetString("storageBackend")
	switch backend {
	case "sqlite":
		return sqlitekv.Open(core.Conf.GetString("storagePath"))
	case "postgres":
		return pgkv.Open(ctx, core.Conf.GetString("postgresDSN"))
	case "redis":
		return rediskv.Open(ctx, core.Conf.GetString("redisAddr"))
	case "memory":
		return memorykv.Open(), nil
	default:
		return nil, errors.Errorf("unknown storage backend %q", backend)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
