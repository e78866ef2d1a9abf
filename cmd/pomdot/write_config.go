package main

import (
	"context"
	"errors"

	"github.com/raphi011/pomdot/internal/config"
	"github.com/raphi011/pomdot/internal/log"
	"github.com/raphi011/pomdot/internal/output"
)

// writeConfig writes the default config file.
func writeConfig(ctx context.Context, path string, force bool) error {
	if err := config.WriteDefault(path, force); err != nil {
		if errors.Is(err, config.ErrAlreadyExists) {
			return usage(err)
		}
		return err
	}

	log.FromContext(ctx).Debug("wrote default config", "path", path, "force", force)
	output.FromContext(ctx).Printf("Wrote config: %s\n", path)
	return nil
}
