package wizard

import "github.com/spf13/cobra"

func NewWizardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Interactive intake wizard",
	}

	cmd.AddCommand(NewRunCommand())

	return cmd
}
