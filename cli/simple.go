package cli

import (
	"fmt"
	"os"

	"github.com/loadgen/loaded/engine"
	"github.com/loadgen/loaded/worker"

	"github.com/spf13/cobra"
)

// headerFlags accumulates repeated -X key=value flags into engine.KeyValue
// pairs, the way the original's SimpleArgs::headers collects its -X flags.
type headerFlags struct {
	values []engine.KeyValue
}

func (h *headerFlags) String() string { return "" }

func (h *headerFlags) Set(raw string) error {
	key, value, ok := splitHeader(raw)
	if !ok {
		return fmt.Errorf("invalid header %q, expected key=value", raw)
	}
	h.values = append(h.values, engine.KeyValue{Key: key, Value: value})
	return nil
}

func (h *headerFlags) Type() string { return "key=value" }

func splitHeader(raw string) (key, value string, ok bool) {
	for i := 0; i < len(raw); i++ {
		if raw[i] == '=' {
			return raw[:i], raw[i+1:], true
		}
	}
	return "", "", false
}

func newSimpleCommand(run *runFlags) *cobra.Command {
	var (
		method   string
		headers  headerFlags
		body     string
		bodyFile string
	)

	cmd := &cobra.Command{
		Use:   "simple",
		Short: "Send a fixed request to every URL, e.g. a health-check endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			if body != "" && bodyFile != "" {
				return fmt.Errorf("--body and --body-from-file are mutually exclusive")
			}

			bodyBytes := []byte(body)
			if bodyFile != "" {
				b, err := os.ReadFile(bodyFile)
				if err != nil {
					return fmt.Errorf("reading --body-from-file: %w", err)
				}
				bodyBytes = b
			}

			desc := worker.EngineDescriptor{
				SimpleMethod:  method,
				SimpleHeaders: headers.values,
				SimpleBody:    bodyBytes,
			}
			return runAndReport(run, desc)
		},
	}

	cmd.Flags().StringVar(&method, "method", "GET", "HTTP method to issue")
	cmd.Flags().VarP(&headers, "header", "X", `a "key=value" header to attach to every request; may be repeated`)
	cmd.Flags().StringVar(&body, "body", "", "literal request body")
	cmd.Flags().StringVar(&bodyFile, "body-from-file", "", "path to a file whose contents become the request body")

	return cmd
}
