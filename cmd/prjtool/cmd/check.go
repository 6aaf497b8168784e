package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ssargent/contamprj/pkg/prj"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <kind> <file>",
	Short: "Decode a record section and report problems",
	Long: `Decode a counted record section (or the run control record) and report
how many records it holds. Use "-" to read from stdin.

Example:
  prjtool check zone zones.txt
  prjtool check --lenient species species.txt`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := settingsFrom(cmd)
		kind, err := prj.ParseKind(args[0])
		if err != nil {
			return err
		}
		text, err := readInput(args[1], cmd.InOrStdin())
		if err != nil {
			return err
		}

		malformed := 0
		opts := decodeOptions(s)
		warn := opts.OnMalformed
		opts.OnMalformed = func(fe *prj.FieldError) {
			malformed++
			warn(fe)
		}

		records, err := decodeRecords(kind, text, opts)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %d records OK", kind, len(records))
		if malformed > 0 {
			fmt.Fprintf(out, ", %d malformed fields kept at previous value", malformed)
		}
		fmt.Fprintln(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
