// Package check — image resolution rules.
package check

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// imageExtensions are the file types the lightbox and the offer cards
// can display.
var imageExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".svg": true, ".webp": true, ".avif": true,
}

// checkImage verifies a single image reference. External URLs are
// accepted as-is; local paths must exist below the site root and carry
// an image extension. Returns an empty string when the reference is
// fine.
func checkImage(root, src string) string {
	if strings.Contains(src, "://") {
		return ""
	}

	ext := strings.ToLower(path.Ext(src))
	if !imageExtensions[ext] {
		return fmt.Sprintf("image %s has no image extension", src)
	}

	local := filepath.Join(root, strings.TrimPrefix(src, "/"))
	if _, err := os.Stat(local); err != nil {
		return fmt.Sprintf("image %s not found on disk", src)
	}
	return ""
}
