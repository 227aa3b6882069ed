package doctor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/condaops/condactl/internal/conda"
	"github.com/condaops/condactl/internal/config"
	"github.com/condaops/condactl/internal/messages"
	"github.com/condaops/condactl/internal/runner"
	"github.com/condaops/condactl/internal/scripts"
)

// CheckBinary probes for a working conda binary on PATH.
func CheckBinary(ctx context.Context, run runner.Runner) []Result {
	version, err := conda.Version(ctx, run)
	if errors.Is(err, conda.ErrCondaMissing) {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameBinary,
			Message:        messages.DoctorCondaMissing,
			Recommendation: messages.DoctorCondaMissingRecommend,
		}}
	}
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameBinary,
			Message:        fmt.Sprintf(messages.DoctorCondaProbeFailedFmt, err),
			Recommendation: messages.DoctorCondaProbeRecommend,
		}}
	}
	path, err := run.LookPath("conda")
	if err != nil {
		path = "conda"
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameBinary,
		Message:   fmt.Sprintf(messages.DoctorCondaOnPathFmt, version, path),
	}}
}

// CheckInstall looks for a conda installation under the standard prefixes.
// onPath reports whether CheckBinary found a working binary, so an
// installation that exists but is not activated gets flagged instead of
// passed. The returned path is the installation's conda.sh, or empty when
// no prefix holds one.
func CheckInstall(roots []string, onPath bool) ([]Result, string) {
	for _, root := range roots {
		script := conda.ShellInitScript(root)
		info, err := os.Stat(script)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if onPath {
			return []Result{{
				Status:    StatusOK,
				CheckName: messages.DoctorCheckNameInstall,
				Message:   fmt.Sprintf(messages.DoctorInstallFoundFmt, root),
			}}, script
		}
		return []Result{{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameInstall,
			Message:        fmt.Sprintf(messages.DoctorInstallFoundNotEnabledFmt, root),
			Recommendation: fmt.Sprintf(messages.DoctorInstallNotEnabledRecommendFmt, script),
		}}, script
	}
	if onPath {
		return []Result{{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameInstall,
			Message:   messages.DoctorInstallElsewhere,
		}}, ""
	}
	return []Result{{
		Status:         StatusFail,
		CheckName:      messages.DoctorCheckNameInstall,
		Message:        messages.DoctorInstallMissing,
		Recommendation: messages.DoctorInstallMissingRecommend,
	}}, ""
}

// CheckShellInit reports, per shell startup file under home, whether the
// file sources conda. Missing rc files pass with a skipped note since the
// installer never creates them either.
func CheckShellInit(home string, condaSh string) []Result {
	results := make([]Result, 0, len(conda.RCFiles))
	for _, name := range conda.RCFiles {
		rc := filepath.Join(home, name)
		content, err := os.ReadFile(rc)
		switch {
		case errors.Is(err, os.ErrNotExist):
			results = append(results, Result{
				Status:    StatusOK,
				CheckName: messages.DoctorCheckNameShellInit,
				Message:   fmt.Sprintf(messages.DoctorShellInitAbsentFmt, rc),
			})
		case err != nil:
			results = append(results, Result{
				Status:    StatusWarn,
				CheckName: messages.DoctorCheckNameShellInit,
				Message:   fmt.Sprintf(messages.DoctorFileUnreadableFmt, rc, err),
			})
		case strings.Contains(string(content), "conda.sh"):
			results = append(results, Result{
				Status:    StatusOK,
				CheckName: messages.DoctorCheckNameShellInit,
				Message:   fmt.Sprintf(messages.DoctorShellInitPresentFmt, rc),
			})
		default:
			results = append(results, Result{
				Status:         StatusWarn,
				CheckName:      messages.DoctorCheckNameShellInit,
				Message:        fmt.Sprintf(messages.DoctorShellInitMissingFmt, rc),
				Recommendation: fmt.Sprintf(messages.DoctorShellInitRecommendFmt, condaSh),
			})
		}
	}
	return results
}

// CheckScripts compares each environment's activation script under dir
// against what a fresh generation with condaSh would produce. Absent
// scripts pass with a note; stale ones warn.
func CheckScripts(dir string, catalog *config.Catalog, condaSh string) []Result {
	names := catalog.Names()
	results := make([]Result, 0, len(names))
	for _, name := range names {
		path := scripts.Path(dir, name)
		current, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			results = append(results, Result{
				Status:    StatusOK,
				CheckName: messages.DoctorCheckNameScripts,
				Message:   fmt.Sprintf(messages.DoctorScriptAbsentFmt, name),
			})
			continue
		case err != nil:
			results = append(results, Result{
				Status:    StatusWarn,
				CheckName: messages.DoctorCheckNameScripts,
				Message:   fmt.Sprintf(messages.DoctorFileUnreadableFmt, path, err),
			})
			continue
		}
		want, err := scripts.Render(name, condaSh)
		if err != nil {
			results = append(results, Result{
				Status:    StatusFail,
				CheckName: messages.DoctorCheckNameScripts,
				Message:   fmt.Sprintf(messages.DoctorScriptRenderFailedFmt, name, err),
			})
			continue
		}
		if bytes.Equal(current, want) {
			results = append(results, Result{
				Status:    StatusOK,
				CheckName: messages.DoctorCheckNameScripts,
				Message:   fmt.Sprintf(messages.DoctorScriptCurrentFmt, path),
			})
			continue
		}
		results = append(results, Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameScripts,
			Message:        fmt.Sprintf(messages.DoctorScriptStaleFmt, path),
			Recommendation: fmt.Sprintf(messages.DoctorScriptStaleRecommendFmt, name),
		})
	}
	return results
}

// CheckCatalog loads the environment catalog at path and reports its size.
// The loaded catalog is returned for dependent checks; it is nil when the
// load failed.
func CheckCatalog(path string) ([]Result, *config.Catalog) {
	catalog, err := config.Load(path)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameCatalog,
			Message:        fmt.Sprintf(messages.DoctorCatalogLoadFailedFmt, err),
			Recommendation: messages.DoctorCatalogLoadRecommend,
		}}, nil
	}
	message := fmt.Sprintf(messages.DoctorCatalogLoadedFmt, path, len(catalog.Names()))
	if _, statErr := os.Stat(path); statErr != nil {
		message = fmt.Sprintf(messages.DoctorCatalogBuiltinFmt, path, len(catalog.Names()))
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameCatalog,
		Message:   message,
	}}, catalog
}
