package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/google/uuid"
	"github.com/lmittmann/tint"
	"github.com/nats-io/nats.go"
	"github.com/urfave/cli/v3"

	"github.com/paridad/conform/internal/catalog"
	"github.com/paridad/conform/internal/environment"
	"github.com/paridad/conform/internal/regress"
	"github.com/paridad/conform/internal/report"
	"github.com/paridad/conform/internal/suite"
	"github.com/paridad/conform/internal/trace"
)

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.Kitchen,
	})))

	cmd := &cli.Command{
		Name:  "conform",
		Usage: "conformance and golden-trace regression harness for transpiled binaries",
		Commands: []*cli.Command{
			runCmd(),
			traceCmd(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func runCmd() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "run the equivalence suite: reference vs candidate for every scenario",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "catalog", Usage: "TOML catalog file (default: builtin registry)"},
			&cli.BoolFlag{Name: "parallel", Usage: "fan scenarios out in parallel"},
			&cli.BoolFlag{Name: "nats", Usage: "stream reports to NATS instead of the terminal"},
			&cli.BoolFlag{Name: "sqs", Usage: "stream reports to SQS instead of the terminal"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := environment.ReadEnvConfig()
			if err != nil {
				return err
			}

			var scenarios []catalog.Scenario
			if path := cmd.String("catalog"); path != "" {
				scenarios, err = catalog.Parse(path)
				if err != nil {
					return err
				}
			} else {
				scenarios = catalog.Builtin(cfg.ExamplesDir)
			}

			reporter, err := pickReporter(ctx, cmd, cfg)
			if err != nil {
				return err
			}

			reporter.StartRun(fmt.Sprintf("%d scenario(s)", len(scenarios)))
			failed, err := suite.New(reporter, suite.Options{
				Parallel: cmd.Bool("parallel"),
			}).Run(ctx, scenarios)
			if err != nil {
				reporter.FinishRunWithInternalError(err.Error())
				return err
			}
			reporter.FinishRun(failed)

			if failed > 0 {
				return fmt.Errorf("%d case(s) diverged from the reference", failed)
			}
			return nil
		},
	}
}

func traceCmd() *cli.Command {
	return &cli.Command{
		Name:  "trace",
		Usage: "golden-trace regression checks",
		Commands: []*cli.Command{
			traceCheckCmd(),
			traceDiffCmd(),
		},
	}
}

func traceCheckCmd() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "validate the stored baseline: schema, existence, budgets, syscall patterns",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "trace", Usage: "golden trace JSON (default: <trace dir>/trivial_cli_rust.json)"},
			&cli.StringFlag{Name: "summary", Usage: "trace summary table (default: <trace dir>/trivial_cli_rust_summary.txt)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := environment.ReadEnvConfig()
			if err != nil {
				return err
			}

			tracePath := cmd.String("trace")
			if tracePath == "" {
				tracePath = filepath.Join(cfg.TraceDir, "trivial_cli_rust.json")
			}
			summaryPath := cmd.String("summary")
			if summaryPath == "" {
				summaryPath = filepath.Join(cfg.TraceDir, "trivial_cli_rust_summary.txt")
			}

			golden, err := trace.NewStore().Load(tracePath)
			if err != nil {
				return err
			}
			slog.Info("loaded golden trace",
				"path", tracePath,
				"events", len(golden.Syscalls),
				"fingerprint", golden.Fingerprint)

			sum, err := trace.LoadSummary(summaryPath)
			if err != nil {
				return err
			}

			checks := []struct {
				name string
				err  error
			}{
				{"existence", regress.CheckExistence(golden)},
				{"wall-time budget", regress.CheckTimeBudget(sum, cfg.TimeBudget)},
				{"syscall-count budget", regress.CheckCallBudget(sum, cfg.CallBudget)},
				{"syscall patterns", regress.CheckPatterns(golden)},
			}

			failed := 0
			for _, c := range checks {
				if c.err != nil {
					failed++
					slog.Error("check failed", "check", c.name, "error", c.err)
				} else {
					slog.Info("check passed", "check", c.name)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d trace check(s) failed", failed)
			}
			return nil
		},
	}
}

func traceDiffCmd() *cli.Command {
	return &cli.Command{
		Name:  "diff",
		Usage: "re-capture a live trace of the candidate and diff it against the baseline",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bin", Usage: "candidate executable to trace", Required: true},
			&cli.StringFlag{Name: "trace", Usage: "golden trace JSON (default: <trace dir>/trivial_cli_rust.json)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := environment.ReadEnvConfig()
			if err != nil {
				return err
			}

			tracePath := cmd.String("trace")
			if tracePath == "" {
				tracePath = filepath.Join(cfg.TraceDir, "trivial_cli_rust.json")
			}

			golden, err := trace.NewStore().Load(tracePath)
			if err != nil {
				return err
			}

			fresh, err := regress.NewCapturer(cfg.TracerPath).
				Capture(ctx, cmd.String("bin"), cmd.Args().Slice())
			if err != nil {
				return err
			}

			if err := regress.CompareCounts(golden, fresh, cfg.Tolerance); err != nil {
				return err
			}
			slog.Info("no significant regression detected",
				"baseline", len(golden.Syscalls),
				"fresh", len(fresh.Syscalls),
				"tolerance", cfg.Tolerance)
			return nil
		},
	}
}

func pickReporter(ctx context.Context, cmd *cli.Command, cfg *environment.EnvConfig) (report.Reporter, error) {
	runUuid := uuid.NewString()

	switch {
	case cmd.Bool("nats"):
		nc, err := nats.Connect(cfg.NatsUrl)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to NATS: %w", err)
		}
		return report.NewNats(nc, runUuid, cfg.NatsSubject), nil
	case cmd.Bool("sqs"):
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AwsRegion))
		if err != nil {
			return nil, fmt.Errorf("unable to load SDK config: %w", err)
		}
		if cfg.SqsQueueUrl == "" {
			return nil, fmt.Errorf("SQS_QUEUE_URL is not set")
		}
		return report.NewSqs(sqs.NewFromConfig(awsCfg), runUuid, cfg.SqsQueueUrl), nil
	default:
		return report.NewTerminal(), nil
	}
}
