// Package platform selects conda installer downloads for the local machine.
package platform

import (
	"fmt"
	"runtime"

	"github.com/condaops/condactl/internal/messages"
)

// Flavor identifies a conda distribution.
type Flavor string

const (
	// Miniconda is the minimal conda distribution.
	Miniconda Flavor = "miniconda"
	// Anaconda is the full conda distribution.
	Anaconda Flavor = "anaconda"
)

// ParseFlavor validates a user-supplied flavor string.
func ParseFlavor(s string) (Flavor, error) {
	switch Flavor(s) {
	case Miniconda, Anaconda:
		return Flavor(s), nil
	default:
		return "", fmt.Errorf(messages.InstallCondaInvalidFlavorFmt, s, Miniconda, Anaconda)
	}
}

// Descriptor identifies an operating system and architecture pair using
// GOOS/GOARCH strings. It is built once at process start and passed by value.
type Descriptor struct {
	OS   string
	Arch string
}

// Local returns the descriptor for the running process.
func Local() Descriptor {
	return Descriptor{OS: runtime.GOOS, Arch: runtime.GOARCH}
}

// UnsupportedError reports a (flavor, os, arch) triple with no known installer.
type UnsupportedError struct {
	Flavor Flavor
	OS     string
	Arch   string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf(messages.PlatformUnsupportedFmt, e.Flavor, e.OS, e.Arch)
}

const repoBaseURL = "https://repo.anaconda.com"

type target struct {
	flavor Flavor
	os     string
	arch   string
}

// installerURLs maps every supported (flavor, os, arch) triple to its
// vendor download URL. Lookups for any other triple fail with
// UnsupportedError; there is no fallback.
var installerURLs = map[target]string{
	{Miniconda, "linux", "amd64"}:  repoBaseURL + "/miniconda/Miniconda3-latest-Linux-x86_64.sh",
	{Miniconda, "linux", "arm64"}:  repoBaseURL + "/miniconda/Miniconda3-latest-Linux-aarch64.sh",
	{Miniconda, "darwin", "amd64"}: repoBaseURL + "/miniconda/Miniconda3-latest-MacOSX-x86_64.sh",
	{Miniconda, "darwin", "arm64"}: repoBaseURL + "/miniconda/Miniconda3-latest-MacOSX-arm64.sh",
	{Anaconda, "linux", "amd64"}:   repoBaseURL + "/archive/Anaconda3-2023.09-0-Linux-x86_64.sh",
	{Anaconda, "linux", "arm64"}:   repoBaseURL + "/archive/Anaconda3-2023.09-0-Linux-aarch64.sh",
	{Anaconda, "darwin", "amd64"}:  repoBaseURL + "/archive/Anaconda3-2023.09-0-MacOSX-x86_64.sh",
	{Anaconda, "darwin", "arm64"}:  repoBaseURL + "/archive/Anaconda3-2023.09-0-MacOSX-arm64.sh",
}

// InstallerURL returns the download URL for the flavor on the given platform.
func InstallerURL(flavor Flavor, d Descriptor) (string, error) {
	url, ok := installerURLs[target{flavor, d.OS, d.Arch}]
	if !ok {
		return "", &UnsupportedError{Flavor: flavor, OS: d.OS, Arch: d.Arch}
	}
	return url, nil
}
