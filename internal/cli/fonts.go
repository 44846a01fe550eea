package cli

import "fmt"

import "github.com/spf13/cobra"

import "github.com/tinne26/mtxt/font"

func (self *CLI) fontsCommand() *cobra.Command {
	return &cobra.Command{
		Use: "fonts",
		Short: "List the available fonts",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fonts, err := loadFonts(self.settings.FontsDir, self.Logger)
			if err != nil { return err }

			current := self.settings.Font
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styleTitle.Render(fmt.Sprintf("%d fonts available", fonts.Len())))
			for _, name := range fonts.Names() {
				fnt, _ := fonts.Get(name)
				marker := "  "
				if name == current || (current == "" && name == font.Basic().Name()) {
					marker = styleHighlight.Render("▸ ")
				}
				fmt.Fprintf(out, "%s%s\t%s\n", marker, styleValue.Render(name),
					styleDim.Render(fmt.Sprintf("(height %dpx)", fnt.LineHeight())))
			}
			return nil
		},
	}
}
