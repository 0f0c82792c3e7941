package validate

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/smy-101/skillcheck/internal/constants"
)

// validateDirectoryStructure reports one error per subdirectory outside the
// allow-list. Files are ignored.
func (v *SkillValidator) validateDirectoryStructure() {
	entries, err := os.ReadDir(v.dir)
	if err != nil {
		v.errorf(v.dir, "Failed to read skill directory: %v", err)
		return
	}

	allowed := "{" + strings.Join(constants.AllowedSkillDirs, ", ") + "}"
	for _, entry := range entries {
		path := filepath.Join(v.dir, entry.Name())
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			continue
		}
		if constants.IsAllowedSkillDir(entry.Name()) {
			continue
		}
		v.errorf(path, "Unexpected directory '%s'. Only %s are allowed.", entry.Name(), allowed)
	}
}
