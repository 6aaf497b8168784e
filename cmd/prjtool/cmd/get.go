package cmd

import (
	"fmt"
	"strconv"

	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"
	"github.com/ssargent/contamprj/pkg/prj"
)

func parseRecordArgs(args []string) (ksuid.KSUID, prj.Kind, error) {
	id, err := ksuid.Parse(args[0])
	if err != nil {
		return ksuid.Nil, 0, fmt.Errorf("invalid project id %q: %w", args[0], err)
	}
	kind, err := prj.ParseKind(args[1])
	if err != nil {
		return ksuid.Nil, 0, err
	}
	return id, kind, nil
}

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <project> <kind> [nr]",
	Short: "Print archived records",
	Long: `Print one archived record, or the whole section when nr is omitted.

Example:
  prjtool get 2CZ9dd2Ebr0vzbIcX7tVn2nQfVh zone 3
  prjtool get 2CZ9dd2Ebr0vzbIcX7tVn2nQfVh species`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, kind, err := parseRecordArgs(args)
		if err != nil {
			return err
		}

		archive, err := openArchive(cmd)
		if err != nil {
			return err
		}
		defer archive.Close()

		if len(args) == 3 {
			nr, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid record number %q", args[2])
			}
			text, err := archive.GetText(id, kind, nr)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		}

		records, err := archive.List(id, kind)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), encodeRecords(kind, records))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
