package cmd

import (
	"fmt"

	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"
	"github.com/ssargent/contamprj/pkg/prj"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <kind> <file>",
	Short: "Store a record section in the archive",
	Long: `Decode a record section and store every record in the archive. A new
project is created unless --project names an existing one.

Example:
  prjtool import zone zones.txt
  prjtool import species species.txt --project 2CZ9dd2Ebr0vzbIcX7tVn2nQfVh`,
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

		archive, err := openArchive(cmd)
		if err != nil {
			return err
		}
		defer archive.Close()

		var id ksuid.KSUID
		if project, _ := cmd.Flags().GetString("project"); project != "" {
			id, err = ksuid.Parse(project)
			if err != nil {
				return fmt.Errorf("invalid project id %q: %w", project, err)
			}
		} else {
			id, err = archive.NewProject()
			if err != nil {
				return err
			}
		}

		if err := archive.PutAll(id, records); err != nil {
			return err
		}
		s.logger.Debug("records imported", "project", id.String(), "kind", kind.String(), "count", len(records))
		cmd.Printf("Imported %d %s records into project %s\n", len(records), kind, id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().String("project", "", "Existing project id")
}
