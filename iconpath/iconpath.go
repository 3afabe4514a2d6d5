// Package iconpath finds the icon file of the application.
package iconpath

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xaionaro-go/avicon/logger"
)

const (
	DefaultEnvVar           = "AVICON_ICON_PATH"
	DefaultIconName         = "avicon"
	DefaultPortableFileName = "icon.png"
)

// Prefix is the installation prefix, set it at build time:
//
//	go build -ldflags "-X github.com/xaionaro-go/avicon/iconpath.Prefix=/usr"
var Prefix = "/usr/local"

// Resolver finds the icon path, in the order of priority:
// the environment variable EnvVar; in portable mode, PortableFileName in
// the directory of the running executable; otherwise the icon installed
// under Prefix.
type Resolver struct {
	EnvVar           string
	Prefix           string
	IconName         string
	Portable         bool
	PortableFileName string

	// LookupEnv and Executable default to os.LookupEnv and os.Executable.
	LookupEnv  func(key string) (string, bool)
	Executable func() (string, error)
}

// Default returns the resolver configured by the build: Prefix, and the
// portable mode enabled by the "portable" build tag.
func Default() Resolver {
	return Resolver{
		EnvVar:           DefaultEnvVar,
		Prefix:           Prefix,
		IconName:         DefaultIconName,
		Portable:         isPortableBuild,
		PortableFileName: DefaultPortableFileName,
	}
}

// InstalledPath returns where the installed 256x256 icon is expected.
func (r Resolver) InstalledPath() string {
	return filepath.Join(r.Prefix, "share", "icons", "hicolor", "256x256", "apps", r.IconName+".png")
}

// Resolve returns the path of the icon. An environment variable set to an
// empty string is treated as unset; it may also hold a file:// URL.
func (r Resolver) Resolve(ctx context.Context) (string, error) {
	lookupEnv := r.LookupEnv
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	if r.EnvVar != "" {
		if value, ok := lookupEnv(r.EnvVar); ok && value != "" {
			path, err := FilePathFromURL(value)
			if err != nil {
				return "", fmt.Errorf("invalid %s: %w", r.EnvVar, err)
			}
			logger.Debugf(ctx, "Using %s: %s", r.EnvVar, path)
			return path, nil
		}
	}

	if !r.Portable {
		if r.Prefix == "" || r.IconName == "" {
			return "", fmt.Errorf("the installation prefix or the icon name is not set")
		}
		path := r.InstalledPath()
		logger.Debugf(ctx, "Using icon: %s", path)
		return path, nil
	}

	path, err := r.localFilePath()
	if err != nil {
		return "", fmt.Errorf("unable to get the portable icon path: %w", err)
	}
	logger.Debugf(ctx, "Using icon (portable): %s", path)
	return path, nil
}

func (r Resolver) localFilePath() (string, error) {
	if r.PortableFileName == "" {
		return "", fmt.Errorf("the portable icon file name is not set")
	}
	executable := r.Executable
	if executable == nil {
		executable = os.Executable
	}
	exePath, err := executable()
	if err != nil {
		return "", fmt.Errorf("unable to get the executable path: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exePath); err == nil {
		exePath = resolved
	}
	return filepath.Join(filepath.Dir(exePath), r.PortableFileName), nil
}
