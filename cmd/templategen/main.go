// Command templategen bakes a template source tree into a Go file so the
// templates ship inside the binary. Each file becomes a constant named after
// its relative path (see templates.Identifier) and an entry in the
// bakedTemplates map.
//
// Usage (from internal/templates, via go generate):
//
//	templategen --src files --out baked_templates.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var (
		srcDir  string
		outFile string
		pkgName string
	)

	cmd := &cobra.Command{
		Use:           "templategen",
		Short:         "Bake a template directory into a Go source file",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := collect(srcDir)
			if err != nil {
				return err
			}
			src, err := render(pkgName, srcDir, entries)
			if err != nil {
				return err
			}
			if err := os.WriteFile(outFile, src, 0644); err != nil {
				return fmt.Errorf("writing %s: %w", outFile, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "templategen: wrote %d templates to %s\n", len(entries), outFile)
			return nil
		},
	}
	cmd.Flags().StringVar(&srcDir, "src", "files", "Template source directory")
	cmd.Flags().StringVar(&outFile, "out", "baked_templates.go", "Output Go file")
	cmd.Flags().StringVar(&pkgName, "pkg", "templates", "Package name of the generated file")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "templategen: %v\n", err)
		os.Exit(1)
	}
}
