package cmd

import (
	"fmt"
	"pp-viewer/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type packArgs struct {
	DirPath string
}

var (
	pArgs packArgs
)

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "pack an exported directory into a zip file",
	Long:  "pack an exported directory into a zip file, together with the stylesheet its pages link to",
	RunE:  runPackage,
}

func init() {
	packCmd.Flags().StringVarP(&pArgs.DirPath, "dir-path", "d", "", "directory path")
	RootCmd.AddCommand(packCmd)
}

func runPackage(cmd *cobra.Command, args []string) error {
	if pArgs.DirPath == "" {
		return fmt.Errorf("dir path is required")
	}
	archive, err := utils.PackDir(pArgs.DirPath)
	if err != nil {
		return fmt.Errorf("failed to create zip: %w", err)
	}
	logger.Info("packed", zap.String("archive", archive))
	return nil
}
