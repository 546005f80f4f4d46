package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string      `toml:"-"`
	Columns  ColumnsConfig `toml:"columns"`
	Label    LabelConfig   `toml:"label"`
	Style    StyleConfig   `toml:"style"`
	Render   RenderConfig  `toml:"render"`
	Log      LogConfig     `toml:"log"`
}

// ColumnsConfig names the CSV columns read from the Jira export, from [columns].
type ColumnsConfig struct {
	Key     string `toml:"key"`     // Required issue key column
	Type    string `toml:"type"`    // Required issue type column
	Status  string `toml:"status"`  // Required status column
	Summary string `toml:"summary"` // Required summary column
	Blocks  string `toml:"blocks"`  // Substring marking outward "blocks" link columns
	Labels  string `toml:"labels"`  // Substring marking label columns
	Sprint  string `toml:"sprint"`  // Substring marking sprint columns
}

// Markers returns the header substrings of multi-valued columns, in match order.
func (c ColumnsConfig) Markers() []string {
	return []string{c.Blocks, c.Labels, c.Sprint}
}

// LabelConfig holds node label settings from [label].
type LabelConfig struct {
	SprintLabelPrefix string `toml:"sprint_label_prefix"` // Label prefix carrying a sprint, e.g. "SP_"
	IsolatedTitle     string `toml:"isolated_title"`      // Header of the isolated issues node
	WrapWidth         int    `toml:"wrap_width"`          // Soft column limit for summaries
	KeyPrefixLength   int    `toml:"key_prefix_length"`   // Fixed prefix stripped from keys (0 = project code)
	IsolatedPerLine   int    `toml:"isolated_per_line"`   // Isolated keys per label line
}

// StyleConfig holds graph styling from [style].
type StyleConfig struct {
	DoneStatuses   []string `toml:"done_statuses"`   // Statuses painted with DoneColor
	DoneColor      string   `toml:"done_color"`      // Fill color of finished issues
	ScheduledColor string   `toml:"scheduled_color"` // Fill color of issues with a sprint
	FontColor      string   `toml:"font_color"`      // Font color of filled nodes
	RankSep        string   `toml:"ranksep"`         // Graphviz ranksep
	TitleFontSize  int      `toml:"title_font_size"` // Font size of the epic title
}

// RenderConfig holds external tool settings from [render].
type RenderConfig struct {
	Command string `toml:"command"` // Graphviz layout command
	Format  string `toml:"format"`  // Output format passed as -T<format>
	Viewer  string `toml:"viewer"`  // Viewer command; empty picks the platform default
}

// LogConfig holds logging settings from [log].
type LogConfig struct {
	Level string `toml:"level"` // Log level: debug, info, warn, error
}

// LabelOptions returns the label derivation options of the configuration.
func (c *Config) LabelOptions() LabelOptions {
	return LabelOptions{
		SprintLabelPrefix: c.Label.SprintLabelPrefix,
		DoneStatuses:      c.Style.DoneStatuses,
		WrapWidth:         c.Label.WrapWidth,
		KeyPrefixLength:   c.Label.KeyPrefixLength,
	}
}

// Directory and file names for jiraplot.
const (
	AppDirName      = "jiraplot"       // Directory name under the user config dir
	ConfigFileName  = "config.toml"    // Global config file name
	LocalConfigName = ".jiraplot.toml" // Config file name in the working directory
)

// Default configuration values.
const (
	DefaultLogLevel        = "info"
	DefaultRenderCommand   = "dot"
	DefaultRenderFormat    = "pdf"
	DefaultDoneColor       = "#008000"
	DefaultScheduledColor  = "goldenrod3"
	DefaultFontColor       = "white"
	DefaultRankSep         = "2"
	DefaultTitleFontSize   = 30
	DefaultIsolatedPerLine = 3
	DefaultIsolatedTitle   = "Issues neither blocking nor blocked:"
	DefaultSprintPrefix    = "SP_"
)

// GlobalConfigDir returns the global jiraplot directory path.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}

// LocalConfigPath returns the config path inside dir.
func LocalConfigPath(dir string) string {
	return filepath.Join(dir, LocalConfigName)
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Columns: ColumnsConfig{
			Key:     "Issue key",
			Type:    "Issue Type",
			Status:  "Status",
			Summary: "Summary",
			Blocks:  "Blocks",
			Labels:  "Labels",
			Sprint:  "Sprint",
		},
		Label: LabelConfig{
			SprintLabelPrefix: DefaultSprintPrefix,
			IsolatedTitle:     DefaultIsolatedTitle,
			WrapWidth:         DefaultWrapWidth,
			IsolatedPerLine:   DefaultIsolatedPerLine,
		},
		Style: StyleConfig{
			DoneStatuses:   []string{"Done", "Fechado"},
			DoneColor:      DefaultDoneColor,
			ScheduledColor: DefaultScheduledColor,
			FontColor:      DefaultFontColor,
			RankSep:        DefaultRankSep,
			TitleFontSize:  DefaultTitleFontSize,
		},
		Render: RenderConfig{
			Command: DefaultRenderCommand,
			Format:  DefaultRenderFormat,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// RenderConfigTemplate renders the commented config template for cfg.
func RenderConfigTemplate(cfg *Config) string {
	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		// Should never happen with valid data
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}

	return buf.String()
}
