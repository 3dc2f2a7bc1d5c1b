package cli

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/yaklabco/srcmine/internal/ui/pretty"
)

// tagsAnnotation names the command annotation rendered as a "Tags:" help
// section.
const tagsAnnotation = "tags"

// HelpFormatter provides styled help output for Cobra commands. Color is
// resolved when help is rendered, after --color has been parsed.
type HelpFormatter struct {
	colorMode *string
}

// NewHelpFormatter creates a help formatter that reads the color mode
// through colorMode.
func NewHelpFormatter(colorMode *string) *HelpFormatter {
	return &HelpFormatter{colorMode: colorMode}
}

func (h *HelpFormatter) styles(cmd *cobra.Command) *pretty.Styles {
	mode := "auto"
	if h.colorMode != nil {
		mode = strings.ToLower(*h.colorMode)
	}
	return pretty.NewStyles(pretty.IsColorEnabled(mode, cmd.OutOrStdout()))
}

// templateFuncs returns template functions for styled help rendering.
func templateFuncs(styles *pretty.Styles) template.FuncMap {
	return template.FuncMap{
		"styleCommand": styles.HelpCommand.Render,
		"styleHeading": styles.HelpHeading.Render,
		"styleFlag":    styles.HelpFlag.Render,
		"styleDim":     styles.Dim.Render,
		"styleFlagsUsage": func(flags interface{ FlagUsages() string }) string {
			return styleFlagsUsage(styles, flags.FlagUsages())
		},
		"wrapTags":                wrapTags,
		"join":                    strings.Join,
		"rpad":                    rpad,
		"trimTrailingWhitespaces": trimTrailingWhitespaces,
	}
}

const usageTemplate = `{{ styleHeading "Usage:" }}
  {{if .Runnable}}{{ styleCommand .UseLine }}{{end}}
  {{if .HasAvailableSubCommands}}{{ styleCommand .CommandPath }} [command]{{end}}

{{- if gt (len .Aliases) 0}}

{{ styleHeading "Aliases:" }}
  {{ styleDim (join .Aliases ", ") }}
{{- end}}

{{- with index .Annotations "tags"}}

{{ styleHeading "Tags:" }}
{{ wrapTags . }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ styleHeading "Available Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ styleCommand (rpad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ styleHeading "Flags:" }}
{{ styleFlagsUsage .LocalFlags }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ styleHeading "Global Flags:" }}
{{ styleFlagsUsage .InheritedFlags }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ styleCommand (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

const helpTemplate = `{{with (or .Long .Short)}}{{ . | trimTrailingWhitespaces }}

{{end}}` + usageTemplate

// styleFlagsUsage styles each line of a pflag usage block.
func styleFlagsUsage(styles *pretty.Styles, usages string) string {
	if usages == "" {
		return ""
	}

	lines := strings.Split(strings.TrimSuffix(usages, "\n"), "\n")
	for i, line := range lines {
		lines[i] = styleFlagLine(styles, line)
	}
	return strings.Join(lines, "\n")
}

// styleFlagLine styles "  -f, --flag type   description", keeping the
// original alignment.
func styleFlagLine(styles *pretty.Styles, line string) string {
	trimmed := strings.TrimLeft(line, " ")
	if trimmed == "" {
		return line
	}
	indent := line[:len(line)-len(trimmed)]

	flagPart, desc, ok := splitFlagLine(trimmed)
	if !ok {
		return line
	}
	gap := strings.Repeat(" ", len(trimmed)-len(flagPart)-len(desc))

	return indent + styleFlagPart(styles, flagPart) + gap + desc
}

// splitFlagLine splits a flag line at the first run of two or more spaces.
func splitFlagLine(line string) (string, string, bool) {
	idx := strings.Index(line, "  ")
	if idx < 0 {
		return "", "", false
	}
	desc := strings.TrimLeft(line[idx:], " ")
	if desc == "" {
		return "", "", false
	}
	return line[:idx], desc, true
}

// styleFlagPart colors flag names and dims their value type.
func styleFlagPart(styles *pretty.Styles, flagPart string) string {
	tokens := strings.Fields(flagPart)
	for i, token := range tokens {
		if strings.HasPrefix(token, "-") {
			clean := strings.TrimSuffix(token, ",")
			tokens[i] = styles.HelpFlag.Render(clean) + token[len(clean):]
		} else {
			tokens[i] = styles.Dim.Render(token)
		}
	}
	return strings.Join(tokens, " ")
}

// wrapTags lays a comma-separated tag list out over indented lines.
func wrapTags(joined string) string {
	const width = 72

	var b strings.Builder
	lineLen := 0
	for i, tag := range strings.Split(joined, ", ") {
		if i > 0 && lineLen+len(tag)+1 > width {
			b.WriteString("\n")
			lineLen = 0
		}
		if lineLen == 0 {
			b.WriteString("  ")
			lineLen = 2
		} else {
			b.WriteString(" ")
			lineLen++
		}
		b.WriteString(tag)
		lineLen += len(tag)
	}
	return b.String()
}

// ApplyToCommand installs the styled help and usage functions on cmd. They
// are inherited by every subcommand.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	render := func(command *cobra.Command, name, text string) error {
		tmpl, err := template.New(name).Funcs(templateFuncs(h.styles(command))).Parse(text)
		if err != nil {
			return fmt.Errorf("parse %s template: %w", name, err)
		}
		return tmpl.Execute(command.OutOrStdout(), command)
	}

	cmd.SetUsageFunc(func(command *cobra.Command) error {
		return render(command, "usage", usageTemplate)
	})
	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		if err := render(command, "help", helpTemplate); err != nil {
			command.PrintErrln(err)
		}
	})
}

// rpad adds padding to the right of a string.
func rpad(str string, padding int) string {
	if len(str) >= padding {
		return str
	}
	return str + strings.Repeat(" ", padding-len(str))
}

// trimTrailingWhitespaces removes trailing whitespace from lines.
func trimTrailingWhitespaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
