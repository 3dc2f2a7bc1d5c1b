package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/srcmine/internal/ui/pretty"
	"github.com/yaklabco/srcmine/pkg/config"
	"github.com/yaklabco/srcmine/pkg/lang"
)

type languagesFlags struct {
	format string
}

const formatJSON = "json"

// languageInfo represents a language in JSON output.
type languageInfo struct {
	Name       string   `json:"name"`
	Display    string   `json:"display"`
	Extensions []string `json:"extensions"`
	Tags       []string `json:"tags"`
}

func newLanguagesCommand(globals *globalOptions) *cobra.Command {
	flags := &languagesFlags{}

	cmd := &cobra.Command{
		Use:     "languages [LANGUAGE]",
		Aliases: []string{"langs"},
		Short:   "List supported languages and their tags",
		Long: `List every supported language with its file extensions and the
construct tags it recognizes. Given a language name or alias, list only
that language.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles := lang.Default().Profiles()
			if len(args) == 1 {
				p, err := lang.Default().Lookup(args[0])
				if err != nil {
					return err
				}
				profiles = []*lang.Profile{p}
			}

			infos := languageInfos(profiles)
			out := cmd.OutOrStdout()

			switch flags.format {
			case formatJSON:
				return outputLanguagesJSON(out, infos)
			case "", "text":
			default:
				return fmt.Errorf("%w: invalid --format %q; must be one of: text, json", ErrUsage, flags.format)
			}

			color := config.ColorAuto
			if cmd.Flags().Changed("color") {
				color = config.ColorMode(strings.ToLower(globals.color))
			}
			styles := pretty.NewStyles(pretty.IsColorEnabled(string(color), out))

			rows := make([][]string, 0, len(infos))
			for _, info := range infos {
				rows = append(rows, []string{
					info.Display,
					strings.Join(info.Extensions, " "),
					strings.Join(info.Tags, " "),
				})
			}

			table := pretty.NewTableFormatter(styles, terminalWidth(out))
			_, err := io.WriteString(out, table.Format([]string{"LANGUAGE", "EXTENSIONS", "TAGS"}, rows))
			return err
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")

	return cmd
}

func languageInfos(profiles []*lang.Profile) []languageInfo {
	infos := make([]languageInfo, 0, len(profiles))
	for _, p := range profiles {
		supported := p.SupportedTags()
		tags := make([]string, len(supported))
		for i, tag := range supported {
			tags[i] = tag.String()
		}
		infos = append(infos, languageInfo{
			Name:       p.Name,
			Display:    p.Display,
			Extensions: p.Extensions,
			Tags:       tags,
		})
	}
	return infos
}

// outputLanguagesJSON outputs languages as a JSON array.
func outputLanguagesJSON(w io.Writer, infos []languageInfo) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding languages: %w", err)
	}
	return nil
}

// terminalWidth returns the width of w when it is a terminal, else 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
