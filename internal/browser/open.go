package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// opener returns the command line that hands target to the desktop on goos.
func opener(goos, target string) ([]string, error) {
	switch goos {
	case "darwin":
		return []string{"open", target}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return []string{"xdg-open", target}, nil
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler", target}, nil
	default:
		return nil, fmt.Errorf("unsupported OS: %s", goos)
	}
}

// Open opens target (a URL) in the user's default browser without waiting
// for it to exit.
func Open(target string) error {
	argv, err := opener(runtime.GOOS, target)
	if err != nil {
		return err
	}
	return exec.Command(argv[0], argv[1:]...).Start()
}

// FileURL returns the file:// URL for a local path.
func FileURL(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return (&url.URL{Scheme: "file", Path: p}).String(), nil
}

// OpenFile opens the local file at path in the default browser.
func OpenFile(path string) error {
	u, err := FileURL(path)
	if err != nil {
		return err
	}
	return Open(u)
}
