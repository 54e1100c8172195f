package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/thirukguru/version-tracker/model"
	awsconfig "github.com/thirukguru/version-tracker/service/aws_config"
	"github.com/thirukguru/version-tracker/service/flag"
	"github.com/thirukguru/version-tracker/service/output"
	"github.com/thirukguru/version-tracker/service/storage"
	"github.com/thirukguru/version-tracker/service/tracker"
)

func runSubcommand(cmd string, args []string, flagService flag.Service, stdout io.Writer) error {
	flags, rest, err := flagService.ParseSubcommand(cmd, args)
	if err != nil {
		return err
	}

	ctx := context.Background()
	store, err := openStore(ctx, flags, awsconfig.NewService())
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()

	switch cmd {
	case "history":
		return runHistoryCommand(ctx, store, output.NewService(flags.Output, flags.OutputFile), flags.Scope)
	case "db":
		return runDBCommand(ctx, store, rest, stdout)
	default:
		return fmt.Errorf("unsupported command: %s", cmd)
	}
}

// runHistoryCommand prints the stored histories without recording a launch.
func runHistoryCommand(ctx context.Context, store storage.Service, out output.Service, scope string) error {
	versions, err := tracker.LoadHistory(ctx, store, tracker.VersionsKey)
	if err != nil {
		return err
	}
	builds, err := tracker.LoadHistory(ctx, store, tracker.BuildsKey)
	if err != nil {
		return err
	}

	return out.RenderHistory(model.LaunchReport{
		Scope:          scope,
		VersionHistory: versions,
		BuildHistory:   builds,
	})
}

func runDBCommand(ctx context.Context, store storage.Service, rest []string, stdout io.Writer) error {
	if len(rest) == 0 {
		return fmt.Errorf("usage: version-tracker db <vacuum|reset|keys> [--backend ...]")
	}

	switch rest[0] {
	case "vacuum":
		s, ok := store.(*storage.SQLiteStore)
		if !ok {
			return fmt.Errorf("vacuum is only supported by the sqlite backend")
		}
		return s.Vacuum(ctx)
	case "reset":
		for _, key := range []string{tracker.VersionsKey, tracker.BuildsKey} {
			if err := store.Delete(ctx, key); err != nil {
				return err
			}
		}
		fmt.Fprintln(stdout, "Launch history cleared")
		return nil
	case "keys":
		keys, err := store.Keys(ctx)
		if err != nil {
			return err
		}
		sqlite, _ := store.(*storage.SQLiteStore)
		for _, k := range keys {
			v, _, err := store.Get(ctx, k)
			if err != nil {
				return err
			}
			if sqlite == nil {
				fmt.Fprintf(stdout, "%s\t%s\n", k, v)
				continue
			}
			// The sqlite backend also records when each key was last written.
			updated, _, err := sqlite.UpdatedAt(ctx, k)
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "%s\t%s\t%s\n", k, v, updated.Format(time.RFC3339))
		}
		return nil
	default:
		return fmt.Errorf("unsupported db command: %s", rest[0])
	}
}
