package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/quarry/internal/demo"
)

// SectionInfo describes one demo section.
type SectionInfo struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

// NewSectionsCommand creates the sections command.
func NewSectionsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List demo sections in report order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listSections(rootOpts, cmd)
		},
	}
}

func listSections(opts *RootOptions, cmd *cobra.Command) error {
	all := demo.Sections()
	infos := make([]SectionInfo, len(all))
	for i, s := range all {
		infos[i] = SectionInfo{Name: s.Name, Title: s.Title}
	}

	if opts.Config.Format == "json" {
		formatter := &OutputFormatter{Format: "json", Writer: cmd.OutOrStdout()}
		return formatter.Success(infos)
	}

	w := cmd.OutOrStdout()
	for _, info := range infos {
		fmt.Fprintf(w, "%-12s %s\n", info.Name, info.Title)
	}
	return nil
}
