package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/raphi011/pomdot/internal/config"
	"github.com/raphi011/pomdot/internal/countdown"
	"github.com/raphi011/pomdot/internal/output"
	"github.com/raphi011/pomdot/internal/settings"
	"github.com/raphi011/pomdot/internal/stage"
	"github.com/raphi011/pomdot/internal/ui/static"
	"github.com/raphi011/pomdot/internal/ui/styles"
)

// settingValue is one setting formatted as in the config file.
type settingValue struct {
	key   string
	value string
}

// settingValues formats s in config file order.
func settingValues(s settings.Settings) []settingValue {
	return []settingValue{
		{config.KeyTime, formatTime(s.Time)},
		{config.KeyCompact, strconv.FormatBool(s.Compact)},
		{config.KeyNoBell, strconv.FormatBool(s.NoBell)},
		{config.KeyBarWidth, strconv.Itoa(s.BarWidth)},
	}
}

// statusRows pairs each formatted value with the source it resolved from.
func statusRows(s settings.Settings, r settings.Resolved) []static.SettingRow {
	values := settingValues(s)
	sources := r.Sources()
	rows := make([]static.SettingRow, len(values))
	for i, v := range values {
		rows[i] = static.SettingRow{Key: v.key, Value: v.value, Source: string(sources[i].Source)}
	}
	return rows
}

// showStatus prints the resolved settings with their sources. Terminals get
// a styled table; everything else gets one "key = value (source: x)" line
// per setting.
func showStatus(ctx context.Context, path string, s settings.Settings, r settings.Resolved) error {
	out := output.FromContext(ctx)
	rows := statusRows(s, r)

	out.Println(banner())
	out.Printf("config_path = %s\n", path)

	if !out.IsTerminal() {
		for _, row := range rows {
			out.Printf("%s = %s (source: %s)\n", row.Key, row.Value, row.Source)
		}
		return nil
	}

	fmt.Fprint(out.Styled(), static.RenderSettings(rows))

	stages := stage.Build(s.Focus, s.Rest, s.Repeat)
	total := int(stage.Total(stages).Seconds())
	fmt.Fprintln(out.Styled(), styles.MutedStyle.Render(
		fmt.Sprintf("%d stages, %s total", len(stages), countdown.FormatHHMMSS(total))))
	return nil
}

// formatTime renders the time triple as a TOML string array.
func formatTime(t [3]string) string {
	quoted := make([]string, len(t))
	for i, v := range t {
		quoted[i] = strconv.Quote(v)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
