package conda

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/condaops/condactl/internal/messages"
)

// RCFiles are the shell startup files that receive conda initialization.
var RCFiles = []string{".bashrc", ".zshrc"}

// EnsureShellInit appends a source line for condaSh to each shell rc file
// that already exists under home. Files that already contain the line are
// left untouched, so repeated runs never duplicate the entry. Missing rc
// files are skipped rather than created.
func EnsureShellInit(home string, condaSh string, out io.Writer) error {
	line := fmt.Sprintf("source %q", condaSh)
	block := fmt.Sprintf("\n%s\n%s\n", messages.CondaShellInitComment, line)

	for _, name := range RCFiles {
		rc := filepath.Join(home, name)
		content, err := os.ReadFile(rc)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf(messages.CondaShellInitReadFmt, rc, err)
		}
		if strings.Contains(string(content), line) {
			continue
		}
		if err := appendToFile(rc, block); err != nil {
			return fmt.Errorf(messages.CondaShellInitAppendFmt, rc, err)
		}
		_, _ = fmt.Fprintf(out, messages.CondaShellInitAddedFmt, rc)
	}
	return nil
}

func appendToFile(path string, text string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(text); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
