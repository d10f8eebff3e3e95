// Package cli implements the plunetc command tree.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/flowbridge/plunet/pkg/config"
	"github.com/flowbridge/plunet/pkg/executor"
	"github.com/flowbridge/plunet/pkg/logging"
	"github.com/flowbridge/plunet/pkg/metrics"
	"github.com/flowbridge/plunet/pkg/requestlog"
	"github.com/flowbridge/plunet/pkg/session"
	"github.com/flowbridge/plunet/pkg/soap"
)

type rootFlags struct {
	configPath string
	endpoint   string
	username   string
	password   string
	timeout    time.Duration
	logLevel   string
	logFormat  string
}

// NewRootCommand builds the plunetc command tree.
func NewRootCommand(version string) *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "plunetc",
		Short:         "Call translation-management API operations from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "path to config file")
	root.PersistentFlags().StringVar(&flags.endpoint, "endpoint", "", "API base URL (env PLUNET_ENDPOINT)")
	root.PersistentFlags().StringVar(&flags.username, "username", "", "API username (env PLUNET_USERNAME)")
	root.PersistentFlags().StringVar(&flags.password, "password", "", "API password (env PLUNET_PASSWORD)")
	root.PersistentFlags().DurationVar(&flags.timeout, "timeout", 0, "per-call timeout (overrides config)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "log format: text or json")

	root.AddCommand(
		newCallCommand(flags),
		newLoginCommand(flags),
		newOpsCommand(),
		newValidateCommand(flags),
		newVersionCommand(version),
	)
	return root
}

// loadConfig merges config file, environment, and flags, flags winning.
func (f *rootFlags) loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.FromEnv()
	if f.endpoint != "" {
		cfg.Endpoint = f.endpoint
	}
	if f.username != "" {
		cfg.Username = f.username
	}
	if f.password != "" {
		cfg.Password = f.password
	}
	if f.timeout > 0 {
		cfg.TimeoutMs = int(f.timeout.Milliseconds())
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.logFormat != "" {
		cfg.Log.Format = f.logFormat
	}
	return cfg, nil
}

// connector is the wired call stack behind one CLI invocation.
type connector struct {
	executor *executor.Executor
	sessions *session.Manager
	creds    session.Credentials
	requests *requestlog.MemoryStore
	metrics  *metrics.Collector
	log      *slog.Logger
}

// logout releases the session. A failed logout only costs a server-side
// session that expires on its own, so it is logged rather than returned.
func (c *connector) logout(ctx context.Context) {
	if err := c.sessions.Logout(ctx, c.creds); err != nil {
		c.log.Debug("logout failed", "error", err)
	}
}

func (f *rootFlags) connect(cmd *cobra.Command) (*connector, error) {
	cfg, err := f.loadConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Format: logging.ParseFormat(cfg.Log.Format),
		Output: cmd.ErrOrStderr(),
	})

	clientOpts := []soap.Option{soap.WithTimeout(cfg.Timeout())}
	if cfg.UserAgent != "" {
		clientOpts = append(clientOpts, soap.WithUserAgent(cfg.UserAgent))
	}
	client := soap.NewClient(clientOpts...)

	creds := session.Credentials{URL: cfg.Endpoint, Username: cfg.Username, Password: cfg.Password}
	sessions := session.NewManager(client, log)
	requests := requestlog.NewMemoryStore(cfg.RequestLogSize)
	collector := metrics.NewCollector()

	exec := executor.New(client, sessions, creds,
		executor.WithLogger(log),
		executor.WithRequestLog(requests),
		executor.WithMetrics(collector),
		executor.WithNumericBools(cfg.NumericBoolParams...),
		executor.WithBenignStatusCodes(cfg.BenignStatusCodes),
	)
	return &connector{
		executor: exec,
		sessions: sessions,
		creds:    creds,
		requests: requests,
		metrics:  collector,
		log:      log,
	}, nil
}
