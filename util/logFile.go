package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GetLogfile opens <command>.log in the readkey cache dir, truncating it.
// Each command gets its own file so `readkey raw` run from a second shell
// does not wipe the log of a read loop still in progress.
func GetLogfile(command string) (*os.File, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	dir = filepath.Join(dir, "readkey")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create user cache dir: %w", err)
	}

	filePath := filepath.Join(dir, logName(command))

	logFile, err := os.OpenFile(filePath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to create user log file: %w", err)
	}

	return logFile, nil
}

// logName maps a command path such as "readkey raw" to "readkey-raw.log".
func logName(command string) string {
	name := strings.Join(strings.Fields(command), "-")
	name = strings.Map(func(r rune) rune {
		if r == '/' || r == os.PathSeparator {
			return '_'
		}
		return r
	}, name)
	if name == "" {
		name = "readkey"
	}
	return name + ".log"
}
