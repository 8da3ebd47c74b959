package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/loadgen/loaded/cos"
	"github.com/loadgen/loaded/runner"
	"github.com/loadgen/loaded/sys"
	"github.com/loadgen/loaded/worker"

	"github.com/spf13/cobra"
)

// runFlags holds the flags shared by every engine subcommand under `run`.
type runFlags struct {
	url         string
	format      string
	threads     int
	connections int
	rateLimit   int
	duration    int64 // seconds; 0 means unset
	numRequests int64
	seed        string
}

func newRunCommand() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run an engine to generate http traffic to a server",
	}

	cmd.PersistentFlags().StringVarP(&flags.url, "url", "u", "", `URL to generate load on, e.g. "http://localhost:9000/endpoint"`)
	cmd.PersistentFlags().StringVarP(&flags.format, "format", "f", "pretty", "format to output results (pretty or json)")
	cmd.PersistentFlags().IntVarP(&flags.threads, "threads", "t", sys.NumCPU(), "number of threads to use to generate load")
	cmd.PersistentFlags().IntVarP(&flags.connections, "connections", "c", 1, "number of connections to open and send requests over")
	cmd.PersistentFlags().IntVarP(&flags.rateLimit, "rate-limit", "r", 0, "limits the number of requests per second (0 means unlimited)")
	cmd.PersistentFlags().Int64VarP(&flags.duration, "duration", "d", 0, "completes the run once this many seconds have elapsed")
	cmd.PersistentFlags().Int64VarP(&flags.numRequests, "num-requests", "n", 0, "completes the run once this many requests have been issued")
	cmd.PersistentFlags().StringVarP(&flags.seed, "seed", "s", cos.NewUUID(), "a seed injecting randomness into a run; engine-specific whether it's used")

	_ = cmd.MarkPersistentFlagRequired("url")

	cmd.AddCommand(newSimpleCommand(flags))
	cmd.AddCommand(newS3Command(flags))

	return cmd
}

func (f *runFlags) toConfig(desc worker.EngineDescriptor) (runner.Config, error) {
	format, err := runner.ParseFormat(f.format)
	if err != nil {
		return runner.Config{}, err
	}
	return runner.Config{
		URL:         f.url,
		Format:      format,
		Threads:     f.threads,
		Connections: f.connections,
		RateLimit:   f.rateLimit,
		Duration:    secondsToDuration(f.duration),
		NumRequests: f.numRequests,
		Seed:        f.seed,
		Engine:      desc,
	}, nil
}

func secondsToDuration(seconds int64) time.Duration {
	return time.Duration(seconds) * time.Second
}

func runAndReport(flags *runFlags, desc worker.EngineDescriptor) error {
	cfg, err := flags.toConfig(desc)
	if err != nil {
		return err
	}

	summary, err := runner.Run(cfg)
	if err != nil {
		return err
	}

	switch cfg.Format {
	case runner.FormatJSON:
		b, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(b))
	default:
		fmt.Print(summary.String())
	}
	return nil
}
