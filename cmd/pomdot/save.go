package main

import (
	"context"

	"github.com/raphi011/pomdot/internal/config"
	"github.com/raphi011/pomdot/internal/output"
	"github.com/raphi011/pomdot/internal/settings"
)

// saveConfig writes the validated settings to path and echoes them.
func saveConfig(ctx context.Context, path string, s settings.Settings) error {
	out := output.FromContext(ctx)

	if err := config.Save(path, s.Values()); err != nil {
		return err
	}

	out.Printf("Saved config: %s\n", path)
	for _, v := range settingValues(s) {
		out.Printf("%s = %s\n", v.key, v.value)
	}
	return nil
}
