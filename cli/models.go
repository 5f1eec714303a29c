package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/binhbb2204/Translation-Hub/pkg/modelcatalog"
	"github.com/spf13/cobra"
)

var modelsGrouped bool

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List available models",
	Long:  `List the Bedrock foundation models and inference profiles that can be rated.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if modelsGrouped {
			for _, g := range modelcatalog.Groups() {
				fmt.Fprintf(out, "[%s]\n", g.Name)
				for _, id := range g.Models {
					fmt.Fprintf(out, "  %s\n", modelcatalog.DisplayName(id))
				}
			}
			return nil
		}

		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tID")
		for _, m := range modelcatalog.Available() {
			fmt.Fprintf(tw, "%s\t%s\n", m.Name, m.ID)
		}
		return tw.Flush()
	},
}

func init() {
	modelsCmd.Flags().BoolVar(&modelsGrouped, "grouped", false, "group models by family")
}
