package conda

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/condaops/condactl/internal/messages"
	"github.com/condaops/condactl/internal/platform"
	"github.com/condaops/condactl/internal/runner"
)

// downloadHTTPClient fetches vendor installer scripts. Installers are
// hundreds of megabytes, so the deadline is generous; earlier cancellation
// comes from the request context.
var downloadHTTPClient = &http.Client{Timeout: 5 * time.Minute}

// DownloadError reports a failed installer download.
type DownloadError struct {
	URL string
	Err error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf(messages.CondaDownloadFailedFmt, e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }

// InstallError reports a failed installer run.
type InstallError struct {
	Err error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf(messages.CondaRunInstallerFmt, e.Err)
}

func (e *InstallError) Unwrap() error { return e.Err }

// Options controls conda installation behavior.
type Options struct {
	// Flavor selects the installer to download. Empty means Miniconda.
	Flavor platform.Flavor
	// Prefix is the install destination. Empty means <home>/miniconda3.
	Prefix string
	// Home is the user home directory used for the transient installer
	// download and the shell rc files.
	Home string
	// URL overrides the vendor installer URL. Empty means the URL for
	// Flavor on the local platform.
	URL string
	// Roots are the prefixes probed for an existing installation. Nil
	// means InstallRoots(Home).
	Roots []string
	// Runner executes the downloaded installer.
	Runner runner.Runner
	// Out receives progress output. Defaults to os.Stdout.
	Out io.Writer
	// Err receives warnings. Defaults to os.Stderr.
	Err io.Writer
}

type installState struct {
	flavor platform.Flavor
	prefix string
	home   string
	url    string
	roots  []string
	runner runner.Runner
	out    io.Writer
	errOut io.Writer
}

// Install provisions a conda installation when none is usable yet.
//
// A conda binary already on PATH short-circuits immediately. An
// installation found under a known prefix also short-circuits, but warns
// that it stays unusable until sourced.
func Install(ctx context.Context, opts Options) error {
	if opts.Home == "" {
		return errors.New(messages.CondaInstallHomeRequired)
	}
	if opts.Runner == nil {
		return errors.New(messages.CondaInstallRunnerRequired)
	}
	flavor := opts.Flavor
	if flavor == "" {
		flavor = platform.Miniconda
	}
	prefix := opts.Prefix
	if prefix == "" {
		prefix = filepath.Join(opts.Home, "miniconda3")
	}
	roots := opts.Roots
	if roots == nil {
		roots = InstallRoots(opts.Home)
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := opts.Err
	if errOut == nil {
		errOut = os.Stderr
	}
	inst := &installState{
		flavor: flavor,
		prefix: prefix,
		home:   opts.Home,
		url:    opts.URL,
		roots:  roots,
		runner: opts.Runner,
		out:    out,
		errOut: errOut,
	}
	return inst.run(ctx)
}

func (inst *installState) run(ctx context.Context) error {
	_, _ = fmt.Fprint(inst.out, messages.CondaCheckingInstall)

	if _, err := Version(ctx, inst.runner); err == nil {
		_, _ = fmt.Fprint(inst.out, messages.CondaAlreadyInstalled)
		return nil
	}

	if script, ok := FindShellInit(inst.roots); ok {
		_, _ = fmt.Fprintf(inst.out, messages.CondaFoundExistingFmt, script)
		warnColor := color.New(color.FgYellow)
		_, _ = warnColor.Fprintf(inst.errOut, messages.CondaNotOnPathWarningFmt, script)
		return nil
	}

	_, _ = fmt.Fprintf(inst.out, messages.CondaInstallingFlavorFmt, inst.flavor)

	url := inst.url
	if url == "" {
		resolved, err := platform.InstallerURL(inst.flavor, platform.Local())
		if err != nil {
			return err
		}
		url = resolved
	}
	logrus.Debugf("resolved %s installer url %s, prefix %s", inst.flavor, url, inst.prefix)

	installerPath, err := inst.download(ctx, url)
	if err != nil {
		return err
	}
	if err := inst.runInstaller(ctx, installerPath); err != nil {
		return err
	}

	condaSh, err := inst.shellIntegration()
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(inst.out, messages.CondaInstallCompleteFmt, inst.prefix, condaSh, condaSh)
	return nil
}

// download fetches the installer script into the home directory and marks
// it executable. The file is transient; runInstaller deletes it.
func (inst *installState) download(ctx context.Context, url string) (string, error) {
	_, _ = fmt.Fprintf(inst.out, messages.CondaDownloadingFmt, inst.flavor, url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &DownloadError{URL: url, Err: err}
	}
	resp, err := downloadHTTPClient.Do(req)
	if err != nil {
		return "", &DownloadError{URL: url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return "", &DownloadError{URL: url, Err: fmt.Errorf(messages.CondaDownloadStatusUnexpectedFmt, resp.Status)}
	}

	path := filepath.Join(inst.home, string(inst.flavor)+"_installer.sh")
	file, err := os.Create(path)
	if err != nil {
		return "", &DownloadError{URL: url, Err: fmt.Errorf(messages.CondaCreateInstallerFileFmt, path, err)}
	}
	if _, err := io.Copy(file, resp.Body); err != nil {
		_ = file.Close()
		return "", &DownloadError{URL: url, Err: fmt.Errorf(messages.CondaWriteInstallerFmt, path, err)}
	}
	if err := file.Close(); err != nil {
		return "", &DownloadError{URL: url, Err: fmt.Errorf(messages.CondaWriteInstallerFmt, path, err)}
	}
	if err := os.Chmod(path, 0o755); err != nil {
		return "", &DownloadError{URL: url, Err: fmt.Errorf(messages.CondaChmodInstallerFmt, path, err)}
	}

	_, _ = fmt.Fprintf(inst.out, messages.CondaDownloadedFmt, path)
	return path, nil
}

func (inst *installState) runInstaller(ctx context.Context, installerPath string) error {
	_, _ = fmt.Fprintf(inst.out, messages.CondaInstallingToFmt, inst.prefix)

	argv := []string{"bash", installerPath, "-b", "-p", inst.prefix}
	_, _ = fmt.Fprintf(inst.out, messages.RunnerCommandEchoFmt, strings.Join(argv, " "))
	if err := inst.runner.Run(ctx, argv[0], argv[1:]...); err != nil {
		return &InstallError{Err: err}
	}
	if err := os.Remove(installerPath); err != nil {
		return fmt.Errorf(messages.CondaRemoveInstallerFmt, installerPath, err)
	}
	return nil
}

// shellIntegration wires the fresh installation into the shell rc files.
// A missing conda.sh under the prefix is a warning, not an error.
func (inst *installState) shellIntegration() (string, error) {
	condaSh := ShellInitScript(inst.prefix)
	if _, err := os.Stat(condaSh); err != nil {
		warnColor := color.New(color.FgYellow)
		_, _ = warnColor.Fprintf(inst.errOut, messages.CondaShellInitMissingWarningFmt, condaSh)
		return condaSh, nil
	}
	if err := EnsureShellInit(inst.home, condaSh, inst.out); err != nil {
		return "", err
	}
	return condaSh, nil
}
