package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"nbntrack/internal/config"
	"nbntrack/internal/tui/theme"
)

const settingsRows = 3

const (
	settingTheme = iota
	settingCache
	settingURL
)

// cycleSetting adjusts the highlighted setting left or right and
// persists the change.
func (a *App) cycleSetting(dir int) {
	switch a.settingsRow {
	case settingTheme:
		names := make([]string, len(theme.All))
		cur := 0
		for i, t := range theme.All {
			names[i] = t.Name
			if t.Name == a.cfg.Appearance.Theme {
				cur = i
			}
		}
		next := (cur + dir + len(names)) % len(names)
		a.cfg.Appearance.Theme = names[next]
		theme.SetActive(names[next])
		a.saveConfig()
	case settingCache:
		a.cfg.General.Cache = !a.cfg.General.Cache
		a.saveConfig()
	}
}

// activateSetting handles enter on the highlighted row.
func (a *App) activateSetting() {
	switch a.settingsRow {
	case settingCache:
		a.cfg.General.Cache = !a.cfg.General.Cache
		a.saveConfig()
	case settingURL:
		a.urlEditing = true
		a.urlInput.SetValue(a.cfg.API.BaseURL)
		a.urlInput.Focus()
	}
}

func (a *App) saveConfig() {
	if err := config.Save(a.cfg); err != nil {
		a.log.Warn("saving config failed", "err", err)
		a.setNotice("could not save config", true)
	}
}

func (a *App) viewSettings() string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Width(14)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	row := func(idx int, label, value string) string {
		marker := "  "
		vs := valueStyle
		if idx == a.settingsRow {
			marker = "> "
			vs = selStyle
		}
		return marker + labelStyle.Render(label) + vs.Render(value)
	}

	cache := "off"
	if a.cfg.General.Cache {
		cache = "on"
	}

	baseURL := a.cfg.API.BaseURL
	if baseURL == "" {
		baseURL = "(unset)"
	}

	var b strings.Builder
	b.WriteString(row(settingTheme, "Theme", a.cfg.Appearance.Theme) + dimStyle.Render("  ←/→ to change") + "\n")
	b.WriteString(row(settingCache, "Offline cache", cache) + dimStyle.Render("  enter to toggle") + "\n")
	if a.urlEditing {
		b.WriteString("> " + labelStyle.Render("Backend") + a.urlInput.View() + "\n")
	} else {
		b.WriteString(row(settingURL, "Backend", baseURL) + dimStyle.Render("  enter to edit") + "\n")
	}
	b.WriteString("\n")
	b.WriteString("  " + labelStyle.Render("Timeout") + dimStyle.Render(fmt.Sprintf("%ds", a.cfg.API.TimeoutSecs)) + "\n")
	b.WriteString("  " + labelStyle.Render("Config file") + dimStyle.Render(config.Path()) + "\n")

	return b.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
