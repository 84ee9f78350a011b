package utils

import (
	"os/user"
	"runtime"
	"strings"
)

// GetUsername returns the name of the user logged in to the operating system.
// A Windows domain prefix (DOMAIN\user) is dropped.
func GetUsername() (string, error) {
	current, err := user.Current()
	if err != nil {
		return "", err
	}

	name := current.Username
	if i := strings.LastIndex(name, `\`); i >= 0 {
		name = name[i+1:]
	}
	return name, nil
}

// GetOperatingSystem returns a display name for the running operating system.
func GetOperatingSystem() string {
	switch runtime.GOOS {
	case "darwin":
		return "Mac OS X"
	case "windows":
		return "Windows"
	case "linux":
		return "Linux"
	case "freebsd":
		return "FreeBSD"
	default:
		return runtime.GOOS
	}
}
