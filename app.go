// Package main is the entry point for the version-tracker application.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"os"

	"github.com/thirukguru/version-tracker/model"
	awsconfig "github.com/thirukguru/version-tracker/service/aws_config"
	"github.com/thirukguru/version-tracker/service/flag"
	"github.com/thirukguru/version-tracker/service/logging"
	"github.com/thirukguru/version-tracker/service/metadata"
	"github.com/thirukguru/version-tracker/service/output"
	"github.com/thirukguru/version-tracker/service/settings"
	"github.com/thirukguru/version-tracker/service/storage"
	"github.com/thirukguru/version-tracker/service/tracker"
	"github.com/thirukguru/version-tracker/shared/spinner"
	"github.com/thirukguru/version-tracker/shared/terminal"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	defaults, err := settings.Load("")
	if err != nil {
		return err
	}
	flagService := flag.NewService(defaults)

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "history", "db":
			return runSubcommand(os.Args[1], os.Args[2:], flagService, os.Stdout)
		}
	}

	flags, err := flagService.GetParsedFlags()
	if err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	versionInfo := model.VersionInfo{Version: version, Commit: commit, Date: date}
	if flags.Version {
		fmt.Printf("version-tracker %s (commit %s, built %s)\n", versionInfo.Version, versionInfo.Commit, versionInfo.Date)
		return nil
	}

	terminal.EnableANSI()
	logger := logging.New(flags.LogLevel, flags.LogFormat, os.Stderr)
	ctx := context.Background()

	store, err := openStore(ctx, flags, awsconfig.NewService())
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()

	meta := newMetadata(versionInfo, flags)
	return runTrack(ctx, store, meta, flags, logger, output.NewService(flags.Output, flags.OutputFile))
}

// runTrack tracks this launch, registers the tracker process-wide and renders the report.
func runTrack(
	ctx context.Context,
	store storage.Service,
	meta metadata.Service,
	flags model.Flags,
	logger *slog.Logger,
	out output.Service,
) error {
	svc := tracker.NewService(store, meta, tracker.WithLogger(logger))

	showSpinner := isRemote(flags.Backend) && flags.Output != "json" && terminal.IsInteractive(os.Stderr)
	if showSpinner {
		spinner.StartSpinner("Syncing launch history...")
	}
	err := svc.Track(ctx)
	if showSpinner {
		spinner.StopSpinner()
	}
	if err != nil {
		return fmt.Errorf("failed to track launch: %w", err)
	}
	tracker.SetCurrent(svc)

	svc.OnFirstLaunchOfVersion(svc.CurrentVersion(), func() {
		logger.Info("first launch of version", "version", svc.CurrentVersion(), "previous", svc.PreviousVersion())
	})
	svc.OnFirstLaunchOfBuild(svc.CurrentBuild(), func() {
		logger.Info("first launch of build", "build", svc.CurrentBuild(), "previous", svc.PreviousBuild())
	})

	report := svc.Report()
	report.Scope = flags.Scope
	report.Backend = backendName(flags.Backend)
	return out.RenderLaunch(report)
}

func newMetadata(info model.VersionInfo, flags model.Flags) metadata.Service {
	var base metadata.Service = metadata.NewStaticService(info)
	if info.Version == "dev" || info.Version == "" {
		if bi, err := metadata.NewBuildInfoService(); err == nil {
			if _, err := bi.CurrentVersion(); err == nil {
				base = bi
			}
		}
	}
	return metadata.WithOverrides(base, flags.AppVersion, flags.AppBuild)
}

func openStore(ctx context.Context, flags model.Flags, awsCfg awsconfig.Service) (storage.Service, error) {
	switch backendName(flags.Backend) {
	case "sqlite":
		s, err := storage.NewSQLiteStore(flags.DBPath, flags.Scope, nil)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "memory":
		return storage.NewMemoryStore(nil), nil
	case "dynamodb":
		cfg, err := awsCfg.GetAWSCfg(ctx, awsconfig.Options{
			Region:  flags.Region,
			Profile: flags.Profile,
			Local:   isLocalEndpoint(flags.Endpoint),
		})
		if err != nil {
			return nil, err
		}
		return storage.NewDynamoDBStore(cfg, flags.Table, flags.Scope, flags.Endpoint, nil), nil
	case "redis":
		s, err := storage.NewRedisStore(flags.RedisURL, flags.Scope)
		if err != nil {
			return nil, err
		}
		if err := s.Ping(ctx); err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported backend: %s", flags.Backend)
	}
}

func backendName(b string) string {
	if b == "" {
		return "sqlite"
	}
	return b
}

func isRemote(backend string) bool {
	return backend == "dynamodb" || backend == "redis"
}

func isLocalEndpoint(endpoint string) bool {
	if endpoint == "" {
		return false
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return false
	}
	host := u.Hostname()
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
