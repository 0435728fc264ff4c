package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var shells = []string{"bash", "fish", "powershell", "zsh"}

func newGenerateCommand() *cobra.Command {
	var shell string

	cmd := &cobra.Command{
		Use:   "generate --shell SHELL",
		Short: "Generates shell completions for the given shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return generateCompletion(cmd.Root(), shell, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&shell, "shell", "s", "", "target shell: "+strings.Join(shells, ", "))
	cobra.CheckErr(cmd.MarkFlagRequired("shell"))
	cobra.CheckErr(cmd.RegisterFlagCompletionFunc("shell",
		func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return shells, cobra.ShellCompDirectiveNoFileComp
		}))

	return cmd
}

func generateCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	case "zsh":
		return root.GenZshCompletion(w)
	}
	return fmt.Errorf("unsupported shell %q: must be one of %s", shell, strings.Join(shells, ", "))
}
