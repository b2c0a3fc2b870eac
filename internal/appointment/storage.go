package appointment

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// readLines returns every line of the file at path without line endings.
// A missing file yields an error matching fs.ErrNotExist.
func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	buf := bufio.NewScanner(file)
	for buf.Scan() {
		lines = append(lines, strings.TrimSuffix(buf.Text(), "\r"))
	}
	if err := buf.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// writeLines replaces the file at path with one newline-terminated line per
// entry.
func writeLines(path string, lines []string) error {
	return replaceFile(path, func(w io.Writer) error {
		buf := bufio.NewWriter(w)
		for _, line := range lines {
			if _, err := buf.WriteString(line + "\n"); err != nil {
				return err
			}
		}
		return buf.Flush()
	})
}

// replaceFile writes the new content to a temporary file next to path and
// renames it over path, so readers never see a half-written day.
func replaceFile(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

// removeFile deletes path. A file that is already gone counts as removed.
func removeFile(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// copyFile copies src byte for byte over dst, creating dst's directory.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	return replaceFile(dst, func(w io.Writer) error {
		_, err := io.Copy(w, in)
		return err
	})
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}
