package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hkft/facet/catalogfilter"
)

func renderCmd() *cobra.Command {
	var (
		family   string
		params   []string
		showMeta bool
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a component family to stdout",
		Example: `  facet render --config example/facet.yaml --catalog example/catalog.yaml
  facet render -f catalog/filter -p cat=shoes --show-meta`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, _, err := buildEngine()
			if err != nil {
				return err
			}
			res, err := eng.Render(cmd.Context(), family, parseParams(params))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Fragment)
			if showMeta {
				fmt.Fprintf(os.Stderr, "pass:    %s\n", res.PassID)
				fmt.Fprintf(os.Stderr, "tags:    %s\n", strings.Join(res.Meta.Tags(), ", "))
				if exp, ok := res.Meta.Expire(); ok {
					fmt.Fprintf(os.Stderr, "expires: %s\n", exp.Format(time.RFC3339))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&family, "family", "f", catalogfilter.Family, "component family to render")
	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "request parameter key=value (repeatable)")
	cmd.Flags().BoolVar(&showMeta, "show-meta", false, "print aggregated cache metadata to stderr")
	return cmd
}

func parseParams(pairs []string) map[string]string {
	params := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		k, v, _ := strings.Cut(pair, "=")
		params[k] = v
	}
	return params
}
