package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func componentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "List registered components and decorators",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, reg, err := buildEngine()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, family := range reg.Families() {
				for _, name := range reg.Components(family) {
					fmt.Fprintf(out, "component\t%s\t%s\n", family, name)
				}
			}
			for _, name := range reg.Decorators() {
				fmt.Fprintf(out, "decorator\t%s\n", name)
			}
			return nil
		},
	}
}
