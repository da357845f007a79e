package runner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// windowToken converts "2026-01-22 12:05" to "220120261205" (DDMMYYYYHHMM).
// Seconds, when present, are dropped.
func windowToken(ts string) string {
	cleaned := strings.NewReplacer("-", "", ":", "", " ", "").Replace(ts)
	if len(cleaned) < 12 {
		return "unknown"
	}
	year := cleaned[0:4]
	month := cleaned[4:6]
	day := cleaned[6:8]
	hour := cleaned[8:10]
	minute := cleaned[10:12]
	return day + month + year + hour + minute
}

// OutputDirName encodes the analysis window into the directory name so runs
// over different windows never collide.
func OutputDirName(prefix, start, end string) string {
	return fmt.Sprintf("%s-%s-%s", prefix, windowToken(start), windowToken(end))
}

// CleanupOutputDirs removes output directories under dir whose names carry
// the given prefix and whose modification time is older than cutoff. It
// returns the names it removed, sorted.
func CleanupOutputDirs(dir, prefix string, cutoff time.Time) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	var removed []string
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix+"-") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}

		if err := os.RemoveAll(filepath.Join(dir, entry.Name())); err != nil {
			return removed, fmt.Errorf("failed to remove %s: %w", entry.Name(), err)
		}
		removed = append(removed, entry.Name())
	}

	sort.Strings(removed)
	return removed, nil
}
