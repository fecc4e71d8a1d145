package ext

import (
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// ReplaceHomeDirWithTilde replaces the home directory in an absolute path with ~
func ReplaceHomeDirWithTilde(path string) string {
	homeDir, err := homedir.Dir()
	if err != nil || homeDir == "" {
		return path // If there's an error, return the original path
	}

	if path == homeDir {
		return "~"
	}
	if strings.HasPrefix(path, homeDir+string(os.PathSeparator)) {
		return "~" + strings.TrimPrefix(path, homeDir)
	}
	return path
}

// ExpandTilde turns a leading ~ into the home directory. Other paths are returned unchanged.
func ExpandTilde(path string) (string, error) {
	return homedir.Expand(path)
}
