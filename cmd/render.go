package cmd

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"pp-viewer/router"
	"pp-viewer/text"
	"pp-viewer/views"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render <path>",
	Short: "Render the view of a route path to stdout",
	Long:  "Render the view a route path resolves to, as the server would, and write it to stdout",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

type renderArgs struct {
	text bool
}

var rndArgs renderArgs

func init() {
	renderCmd.Flags().BoolVarP(&rndArgs.text, "text", "t", false, "write plain text instead of html")
	RootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	v, err := newCLIViews()
	if err != nil {
		return err
	}
	page, err := renderPath(cmd.Context(), v, args[0])
	if err != nil {
		return err
	}
	if err := writePage(cmd.Context(), cmd.OutOrStdout(), page, rndArgs.text); err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}
	if page.Status >= 400 {
		return fmt.Errorf("failed to render %s: %d %s", args[0], page.Status, page.Title)
	}
	return nil
}

// renderPath resolves rawPath (which may carry a ?page= query) and renders
// its view.
func renderPath(ctx context.Context, v *views.Views, rawPath string) (views.Page, error) {
	u, err := url.Parse(rawPath)
	if err != nil {
		return views.Page{}, fmt.Errorf("failed to parse path: %w", err)
	}
	m, ok := router.Match(u.EscapedPath())
	if !ok {
		return views.Page{}, fmt.Errorf("no route matches %q", u.Path)
	}
	return v.Render(ctx, m.Route.View, views.Request{
		Path:   u.Path,
		Params: m.Params,
		Query:  u.Query(),
	}), nil
}

func writePage(ctx context.Context, w io.Writer, page views.Page, plain bool) error {
	if !plain {
		return views.Layout(page).Render(ctx, w)
	}
	s, err := text.Plain(ctx, page.Body)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}
