// Package load implements the Loader interface.
// It enumerates the offer files of a content directory and decodes each
// one independently, so a single broken file never blocks the build.
package load

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rkobusch-privat/unger-warburg-website/core"
)

// FileLoader reads offer records from *.json files in a directory.
type FileLoader struct{}

// New creates a FileLoader.
func New() *FileLoader {
	return &FileLoader{}
}

// Load returns one SourceRecord per parseable offer file. A missing
// directory yields an empty result, not an error. Files that fail to
// decode are skipped with a warning naming the file. No ordering is
// guaranteed beyond what the directory listing provides; the selection
// stage imposes the final order.
func (l *FileLoader) Load(dir string) ([]core.SourceRecord, []core.Warning, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("reading content directory %s: %w", dir, err)
	}

	var records []core.SourceRecord
	var warnings []core.Warning

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			warnings = append(warnings, core.Warning{
				File:    entry.Name(),
				Message: fmt.Sprintf("unreadable: %v", err),
			})
			continue
		}

		var raw core.RawRecord
		if err := json.Unmarshal(data, &raw); err != nil {
			warnings = append(warnings, core.Warning{
				File:    entry.Name(),
				Message: fmt.Sprintf("broken JSON: %v", err),
			})
			continue
		}

		records = append(records, core.SourceRecord{File: entry.Name(), Raw: raw})
	}

	return records, warnings, nil
}
