package conda

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/condaops/condactl/internal/messages"
	"github.com/condaops/condactl/internal/runner"
)

// ErrCondaMissing reports that no usable conda binary is on PATH.
var ErrCondaMissing = errors.New(messages.CondaMissing)

// probeTimeout bounds the version probe so a wedged conda cannot hang
// the CLI. Long-running installs are deliberately unbounded.
const probeTimeout = 10 * time.Second

// Version reports the version of the conda binary on PATH, such as
// "23.1.0". It returns ErrCondaMissing when the binary cannot be found.
func Version(ctx context.Context, run runner.Runner) (string, error) {
	if _, err := run.LookPath("conda"); err != nil {
		return "", ErrCondaMissing
	}

	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	out, err := run.Output(ctx, "conda", "--version")
	if err != nil {
		return "", fmt.Errorf(messages.CondaProbeFailedFmt, err)
	}

	fields := strings.Fields(strings.TrimSpace(out))
	if len(fields) != 2 || fields[0] != "conda" {
		return "", fmt.Errorf(messages.CondaVersionUnexpectedFmt, strings.TrimSpace(out))
	}
	logrus.Debugf("probed conda %s", fields[1])
	return fields[1], nil
}
