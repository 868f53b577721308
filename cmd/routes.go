package cmd

import (
	"fmt"
	"io"
	"pp-viewer/router"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the route table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printRoutes(cmd.OutOrStdout())
	},
}

var routesMatchCmd = &cobra.Command{
	Use:   "match <path>",
	Short: "Print the route a path resolves to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printMatch(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	routesCmd.AddCommand(routesMatchCmd)
	RootCmd.AddCommand(routesCmd)
}

func printRoutes(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PATTERN\tNAME\tVIEW")
	for _, r := range router.Table() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Pattern, r.Name, r.View)
	}
	return tw.Flush()
}

func printMatch(w io.Writer, path string) error {
	m, ok := router.Match(path)
	if !ok {
		return fmt.Errorf("no route matches %q", path)
	}
	fmt.Fprintf(w, "%s %s (%s)\n", m.Route.Name, m.Route.Pattern, m.Route.View)
	names := make([]string, 0, len(m.Params))
	for name := range m.Params {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %s=%s\n", name, m.Params[name])
	}
	return nil
}
