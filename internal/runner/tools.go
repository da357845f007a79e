package runner

import (
	"os"
	"os/exec"

	"github.com/vishwab/pcpscan/internal/core"
)

// MissingTools resolves every required PCP executable on the search path and
// returns the ones that could not be found. A non-empty result aborts the
// run before any report command is spawned.
func MissingTools(cfg *core.Config) []string {
	var missing []string
	for _, tool := range core.RequiredTools {
		if _, err := exec.LookPath(cfg.Binary(tool)); err != nil {
			missing = append(missing, cfg.Binary(tool))
		}
	}
	return missing
}

// HasConfFile reports whether the optional pmrep column configuration exists.
// Its absence is a warning, not an error: only conf-dependent reports fail.
func HasConfFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
