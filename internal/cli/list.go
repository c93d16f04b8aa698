package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ldapviz/pkg/scenario"
)

// newListCmd creates the list command, which prints the scenarios and the
// files they would produce without rendering anything.
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available diagram scenarios",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(styleTitle.Render("Scenarios"))
			for _, s := range scenario.All() {
				printRow(s.Name, s.Title)
				printDetail("%s · output/%s.png", s.Summary, s.Basename)
			}
		},
	}
}
