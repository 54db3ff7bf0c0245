package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/yaklabco/textreport/internal/ui/pretty"
)

// minFlagGap is the run of spaces pflag puts between a flag and its description.
const minFlagGap = 2

// HelpFormatter renders Cobra help and usage with pretty styles.
type HelpFormatter struct {
	// colorMode is read at render time so a parsed --color flag applies.
	colorMode *string
	writer    io.Writer
	styles    *pretty.Styles
}

// NewHelpFormatter creates a help formatter for the given color mode and writer.
func NewHelpFormatter(colorMode *string, writer io.Writer) *HelpFormatter {
	return &HelpFormatter{colorMode: colorMode, writer: writer}
}

func (h *HelpFormatter) funcs() template.FuncMap {
	mode := "auto"
	if h.colorMode != nil {
		mode = *h.colorMode
	}
	h.styles = pretty.NewStyles(pretty.IsColorEnabled(mode, h.writer))

	return template.FuncMap{
		"styleCommand":            h.styles.Command.Render,
		"styleHeading":            h.styles.Heading.Render,
		"styleSubcommand":         h.styles.Subcommand.Render,
		"styleExample":            h.styles.Example.Render,
		"styleDim":                h.styles.Dim.Render,
		"styleFlagsUsage":         h.styleFlagsUsage,
		"rpad":                    rpad,
		"trimTrailingWhitespaces": trimTrailingWhitespaces,
	}
}

const usageTemplate = `{{ styleHeading "Usage:" }}
  {{if .Runnable}}{{ styleCommand .UseLine }}{{end}}
  {{if .HasAvailableSubCommands}}{{ styleCommand .CommandPath }} [command]{{end}}

{{- if .HasExample}}

{{ styleHeading "Examples:" }}
{{ styleExample .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ styleHeading "Available Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ styleSubcommand (rpad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
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

const helpTemplate = `{{if or .Runnable .HasSubCommands}}{{ styleCommand .CommandPath }}{{if .Version}} {{ styleDim .Version }}{{end}}

{{end}}{{with (or .Long .Short)}}{{ . | trimTrailingWhitespaces }}

{{end}}` + usageTemplate

// styleFlagsUsage styles the output of pflag's FlagUsages line by line.
func (h *HelpFormatter) styleFlagsUsage(flags interface{ FlagUsages() string }) string {
	usages := strings.TrimSuffix(flags.FlagUsages(), "\n")
	if usages == "" {
		return ""
	}

	lines := strings.Split(usages, "\n")
	for i, line := range lines {
		lines[i] = h.styleFlagLine(line)
	}
	return strings.Join(lines, "\n")
}

// styleFlagLine styles "  -f, --flag type   description".
func (h *HelpFormatter) styleFlagLine(line string) string {
	trimmed := strings.TrimLeft(line, " ")
	indent := line[:len(line)-len(trimmed)]

	flagPart, description, ok := splitFlagLine(trimmed)
	if !ok {
		return line
	}

	tokens := strings.Fields(flagPart)
	for i, token := range tokens {
		if !strings.HasPrefix(token, "-") {
			tokens[i] = h.styles.Dim.Render(token)
			continue
		}
		name, comma := strings.CutSuffix(token, ",")
		tokens[i] = h.styles.Flag.Render(name)
		if comma {
			tokens[i] += ","
		}
	}

	return indent + strings.Join(tokens, " ") + "   " + description
}

// splitFlagLine splits at the first run of minFlagGap or more spaces.
func splitFlagLine(line string) (string, string, bool) {
	gap := strings.Repeat(" ", minFlagGap)
	idx := strings.Index(line, gap)
	if idx < 0 {
		return "", "", false
	}

	description := strings.TrimLeft(line[idx:], " ")
	if description == "" {
		return "", "", false
	}
	return line[:idx], description, true
}

// ApplyToCommand installs the styled templates on cmd. Subcommands inherit them.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	cmd.SetUsageFunc(func(command *cobra.Command) error {
		tmpl, err := template.New("usage").Funcs(h.funcs()).Parse(usageTemplate)
		if err != nil {
			return fmt.Errorf("parse usage template: %w", err)
		}
		return tmpl.Execute(command.OutOrStderr(), command)
	})

	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		tmpl, err := template.New("help").Funcs(h.funcs()).Parse(helpTemplate)
		if err != nil {
			command.PrintErrln(err)
			return
		}
		if err := tmpl.Execute(command.OutOrStdout(), command); err != nil {
			command.PrintErrln(err)
		}
	})
}

func rpad(str string, padding int) string {
	if len(str) >= padding {
		return str
	}
	return str + strings.Repeat(" ", padding-len(str))
}

func trimTrailingWhitespaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
