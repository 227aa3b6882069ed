package conda

import (
	"os"
	"path/filepath"
)

// InstallRoots returns the prefixes probed for an existing conda
// installation, in priority order. The first root with a shell
// integration script wins.
func InstallRoots(home string) []string {
	return []string{
		filepath.Join(home, "miniconda3"),
		filepath.Join(home, "anaconda3"),
		"/opt/conda",
		"/usr/local/conda",
		"/opt/miniconda3",
		"/opt/anaconda3",
	}
}

// ActivationRoots returns the prefixes searched for shell integration
// when generating activation scripts.
func ActivationRoots(home string) []string {
	return []string{
		filepath.Join(home, "miniconda3"),
		filepath.Join(home, "anaconda3"),
		"/opt/conda",
		"/usr/local/conda",
	}
}

// ShellInitScript returns the conda.sh path under an install prefix.
func ShellInitScript(root string) string {
	return filepath.Join(root, "etc", "profile.d", "conda.sh")
}

// FindShellInit returns the first conda.sh that exists under roots.
func FindShellInit(roots []string) (string, bool) {
	for _, root := range roots {
		script := ShellInitScript(root)
		if info, err := os.Stat(script); err == nil && info.Mode().IsRegular() {
			return script, true
		}
	}
	return "", false
}
