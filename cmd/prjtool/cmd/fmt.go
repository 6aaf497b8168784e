package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ssargent/contamprj/pkg/prj"
)

// fmtCmd represents the fmt command
var fmtCmd = &cobra.Command{
	Use:   "fmt <kind> <file>",
	Short: "Rewrite a record section in canonical form",
	Long: `Decode a record section and write it back out. Comments are dropped and
whitespace is normalised; numeric text is kept as written.

Example:
  prjtool fmt path paths.txt
  prjtool fmt runcontrol rc.txt -o rc.out`,
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

		records, err := decodeRecords(kind, text, decodeOptions(s))
		if err != nil {
			return err
		}
		out := encodeRecords(kind, records)

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		}
		if err := os.WriteFile(output, []byte(out), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", output, err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")
}
