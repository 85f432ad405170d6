package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/sqlstage/internal/files/scanner"
)

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List the files load would see, with the numbers --order uses",
	Long: `Files prints every file in the directory, numbered from 1 in the order
load discovers them. Use these numbers with load --order.

Examples:
  sqlstage files
  sqlstage files --dir ./staged`,
	Args: cobra.NoArgs,
	RunE: runFiles,
}

var filesDir string

func init() {
	rootCmd.AddCommand(filesCmd)
	filesCmd.Flags().StringVar(&filesDir, "dir", "",
		"Directory to list (default: output_dir from sqlstage.yaml, or ./data)")
}

func runFiles(cmd *cobra.Command, args []string) error {
	projectCfg, err := loadProjectConfig(cmd)
	if err != nil {
		return err
	}

	_, dir := resolveDirs("", filesDir, projectCfg)
	return printFileList(os.Stdout, dir)
}

// printFileList writes the numbered listing of dir to w.
func printFileList(w io.Writer, dir string) error {
	names, err := listFileNames(dir)
	if err != nil {
		return err
	}

	if len(names) == 0 {
		fmt.Fprintf(w, "No files in %s\n", dir)
		return nil
	}
	for i, name := range names {
		fmt.Fprintf(w, "%d. %s\n", i+1, name)
	}
	return nil
}

func listFileNames(dir string) ([]string, error) {
	files, err := scanner.NewScanner().ListFiles(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	return names, nil
}
