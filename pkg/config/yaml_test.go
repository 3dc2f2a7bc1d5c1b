package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/srcmine/pkg/config"
)

func TestConfigClone(t *testing.T) {
	t.Parallel()

	t.Run("nil config returns nil", func(t *testing.T) {
		t.Parallel()

		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("deep copies slices and pointers", func(t *testing.T) {
		t.Parallel()

		lineNumbers := true
		original := &config.Config{
			Jobs:         4,
			LineNumbers:  &lineNumbers,
			Exclude:      []string{"vendor/**", "*.min.js"},
			HeadlineTags: []string{"CLASS"},
			Format:       config.FormatConfig{References: "html"},
			Color:        config.ColorNever,
			Debug:        true,
		}

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, original, clone)
		assert.Equal(t, original, clone)

		clone.Exclude[0] = "changed"
		clone.HeadlineTags[0] = "FUNCTION"
		*clone.LineNumbers = false

		assert.Equal(t, "vendor/**", original.Exclude[0])
		assert.Equal(t, "CLASS", original.HeadlineTags[0])
		assert.True(t, *original.LineNumbers)
	})
}

func TestConfigToYAML(t *testing.T) {
	t.Parallel()

	t.Run("nil config returns nil", func(t *testing.T) {
		t.Parallel()

		var cfg *config.Config
		data, err := cfg.ToYAML()
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("omits unset and CLI-only fields", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{Jobs: 2, Encoding: "o200k_base", Debug: true}

		data, err := cfg.ToYAML()
		require.NoError(t, err)
		assert.Equal(t, "jobs: 2\nencoding: o200k_base\n", string(data))
	})

	t.Run("header is separated by a blank line", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{Jobs: 1}

		data, err := cfg.ToYAMLWithHeader("# header")
		require.NoError(t, err)
		assert.Equal(t, "# header\n\njobs: 1\n", string(data))
	})
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	t.Run("parses valid YAML", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.FromYAML([]byte(`
jobs: 3
line_numbers: true
exclude:
  - "vendor/**"
format:
  find: json
  references: html
color: always
headline_tags: [CLASS, FUNCTION]
log_file: /tmp/srcmine.log
`))
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Jobs)
		assert.True(t, cfg.LineNumbersEnabled())
		assert.Equal(t, []string{"vendor/**"}, cfg.Exclude)
		assert.Equal(t, "json", cfg.Format.For("find"))
		assert.Equal(t, "html", cfg.Format.For("references"))
		assert.Empty(t, cfg.Format.For("tokens"))
		assert.Equal(t, config.ColorAlways, cfg.Color)
		assert.Equal(t, []string{"CLASS", "FUNCTION"}, cfg.HeadlineTags)
		assert.Equal(t, "/tmp/srcmine.log", cfg.LogFile)
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.FromYAML([]byte("\n"))
		require.NoError(t, err)
		assert.Nil(t, cfg.LineNumbers)
		assert.False(t, cfg.LineNumbersEnabled())
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		t.Parallel()

		_, err := config.FromYAML([]byte("flavor: gfm\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "flavor")
	})
}

func TestColorModeIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, config.ColorAuto.IsValid())
	assert.True(t, config.ColorAlways.IsValid())
	assert.True(t, config.ColorNever.IsValid())
	assert.False(t, config.ColorMode("sometimes").IsValid())
}

func TestGenerateTemplate(t *testing.T) {
	t.Parallel()

	t.Run("minimal template parses to an empty config", func(t *testing.T) {
		t.Parallel()

		data, err := config.GenerateTemplate(config.TemplateOptions{})
		require.NoError(t, err)
		assert.Contains(t, string(data), "# srcmine configuration")

		cfg, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.Equal(t, &config.Config{}, cfg)
	})

	t.Run("full template round-trips", func(t *testing.T) {
		t.Parallel()

		data, err := config.GenerateTemplate(config.TemplateOptions{
			Full:         true,
			HeadlineTags: []string{"CLASS", "FUNCTION"},
			Formats:      config.FormatConfig{Find: "text", References: "markdown"},
		})
		require.NoError(t, err)

		cfg, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.Equal(t, config.ColorAuto, cfg.Color)
		assert.Equal(t, config.DefaultEncoding, cfg.Encoding)
		assert.Equal(t, []string{"CLASS", "FUNCTION"}, cfg.HeadlineTags)
		assert.Equal(t, "markdown", cfg.Format.References)
		require.NotNil(t, cfg.LineNumbers)
		assert.False(t, *cfg.LineNumbers)
	})
}
