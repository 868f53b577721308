package utils

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"pp-viewer/template"
)

// StylesheetPath is where exported pages expect the shared stylesheet.
const StylesheetPath = "static/style.css"

// WriteStylesheet writes the shared stylesheet under dir at StylesheetPath.
func WriteStylesheet(dir string) error {
	dest := filepath.Join(dir, filepath.FromSlash(StylesheetPath))
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}
	return os.WriteFile(dest, []byte(template.StyleCSS), 0644)
}

// PackDir zips the content of path into path+".zip", adding the stylesheet the
// exported pages link to. It returns the archive path.
func PackDir(path string) (string, error) {
	path = filepath.Clean(path)
	savePath := path + ".zip"
	zipFile, err := os.Create(savePath)
	if err != nil {
		return "", err
	}
	defer zipFile.Close()

	zipWriter := zip.NewWriter(zipFile)

	err = addDirContentToZip(zipWriter, path, zip.Deflate)
	if err != nil {
		return "", err
	}

	err = addStringToZip(zipWriter, StylesheetPath, template.StyleCSS, zip.Deflate)
	if err != nil {
		return "", err
	}

	if err := zipWriter.Close(); err != nil {
		return "", err
	}
	return savePath, nil
}

func addStringToZip(zipWriter *zip.Writer, relPath, content string, method uint16) error {
	header := &zip.FileHeader{
		Name:   relPath,
		Method: method,
	}
	writer, err := zipWriter.CreateHeader(header)
	if err != nil {
		return err
	}

	_, err = writer.Write([]byte(content))
	return err
}

func addDirContentToZip(zipWriter *zip.Writer, dirPath string, method uint16) error {
	return filepath.Walk(dirPath, func(filePath string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(dirPath, filePath)
		if err != nil {
			return err
		}
		if filepath.ToSlash(relPath) == StylesheetPath {
			return nil
		}

		file, err := os.Open(filePath)
		if err != nil {
			return err
		}
		defer file.Close()

		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return err
		}
		header.Name = filepath.ToSlash(relPath)
		header.Method = method

		writer, err := zipWriter.CreateHeader(header)
		if err != nil {
			return err
		}

		_, err = io.Copy(writer, file)
		return err
	})
}
