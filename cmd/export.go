package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"pp-viewer/text"
	"pp-viewer/utils"
	"pp-viewer/views"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportCmd = &cobra.Command{
	Use:   "export <path>...",
	Short: "Render route paths into html files",
	Long:  "Render route paths into html files, one per path, default exports the home, book list and character list views. Links between exported pages are rewritten to relative file names so the directory opens from disk",
	RunE:  runExport,
}

type exportArgs struct {
	outputPath string
}

var eArgs exportArgs

func init() {
	exportCmd.Flags().StringVarP(&eArgs.outputPath, "output-path", "o", "./snapshot", "output path")
	RootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"/", "/books", "/characters/"}
	}
	v, err := newCLIViews()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(eArgs.outputPath, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	type rendered struct {
		path string
		file string
		html []byte
	}
	var pages []rendered
	exported := map[string]bool{}
	failed := 0
	for _, path := range args {
		page, err := renderPath(cmd.Context(), v, path)
		if err != nil {
			return err
		}
		if page.Status >= 400 {
			logger.Warn("skipping page", zap.String("path", path), zap.Int("status", page.Status))
			failed++
			continue
		}
		var buf bytes.Buffer
		if err := writePage(cmd.Context(), &buf, page, false); err != nil {
			return fmt.Errorf("failed to render %s: %w", path, err)
		}
		file := utils.PathFileName(path)
		exported[file] = true
		pages = append(pages, rendered{path: path, file: file, html: buf.Bytes()})
	}

	// links between exported pages and to the stylesheet resolve from disk
	relink := func(href string) (string, bool) {
		if !strings.HasPrefix(href, "/") || strings.HasPrefix(href, "//") {
			return "", false
		}
		if href == views.StylesheetURL {
			return utils.StylesheetPath, true
		}
		file := utils.PathFileName(href)
		return file, exported[file]
	}
	for _, p := range pages {
		html, err := text.RelativeLinks(p.html, relink)
		if err != nil {
			return fmt.Errorf("failed to rewrite links of %s: %w", p.path, err)
		}
		dest := filepath.Join(eArgs.outputPath, p.file)
		if err := os.WriteFile(dest, html, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", dest, err)
		}
		logger.Info("exported", zap.String("path", p.path), zap.String("file", dest))
	}
	if err := utils.WriteStylesheet(eArgs.outputPath); err != nil {
		return fmt.Errorf("failed to write stylesheet: %w", err)
	}

	if failed > 0 {
		return fmt.Errorf("failed to export %d of %d paths", failed, len(args))
	}
	return nil
}
