package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FM1201/aijohub/cli/api"
	"github.com/FM1201/aijohub/cli/session"
	"github.com/FM1201/aijohub/pkg/config"
	"github.com/FM1201/aijohub/pkg/logger"
)

// Runtime bundles the pieces every command needs: resolved config, the
// backend client and the session store.
type Runtime struct {
	Config *config.Config
	Client *api.Client
	Store  *session.Store
}

// NewRuntime loads configuration, applies flag overrides from the root
// command and wires the client and session store.
func NewRuntime(cobraCmd *cobra.Command) (*Runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	applyFlagOverrides(cobraCmd, cfg)

	logger.Init(&logger.Config{
		Level:      logger.LogLevel(cfg.Log.Level),
		JSON:       cfg.Log.JSON,
		TimeFormat: logger.DefaultConfig().TimeFormat,
	})

	dir, err := cfg.SessionDir()
	if err != nil {
		return nil, err
	}

	return &Runtime{
		Config: cfg,
		Client: api.NewClient(cfg),
		Store:  session.NewStore(dir),
	}, nil
}

func applyFlagOverrides(cobraCmd *cobra.Command, cfg *config.Config) {
	flags := cobraCmd.Flags()
	if flags.Changed("server") {
		if v, err := flags.GetString("server"); err == nil {
			cfg.API.BaseURL = v
		}
	}
	if flags.Changed("log-level") {
		if v, err := flags.GetString("log-level"); err == nil {
			cfg.Log.Level = v
		}
	}
	if flags.Changed("log-json") {
		if v, err := flags.GetBool("log-json"); err == nil {
			cfg.Log.JSON = v
		}
	}
}

// RequireSession restores the persisted session or fails with a hint to
// log in first.
func (r *Runtime) RequireSession() (*session.Session, error) {
	sess, err := r.Store.Restore()
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, fmt.Errorf("not logged in, run 'aijohub login' first")
	}
	return sess, nil
}
