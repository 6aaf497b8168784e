package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <project> <kind> <nr>",
	Short: "Delete an archived record",
	Long: `Delete one record from the archive.

Example:
  prjtool delete 2CZ9dd2Ebr0vzbIcX7tVn2nQfVh zone 3`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, kind, err := parseRecordArgs(args)
		if err != nil {
			return err
		}
		nr, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid record number %q", args[2])
		}

		archive, err := openArchive(cmd)
		if err != nil {
			return err
		}
		defer archive.Close()

		if err := archive.Delete(id, kind, nr); err != nil {
			return err
		}
		cmd.Printf("Deleted %s %d\n", kind, nr)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
