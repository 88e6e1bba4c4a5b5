package addon

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/wowkit/tocbump/internal/config"
	"github.com/wowkit/tocbump/internal/debug"
)

// MetadataExtension is the file extension of addon metadata files.
const MetadataExtension = ".toc"

// VerboseFunc receives extra scan diagnostics when --verbose is set.
// A nil VerboseFunc disables them.
type VerboseFunc func(format string, args ...interface{})

// Scan lists the immediate subdirectories of the configured addons root,
// restricts them to the whitelist, and reads every TOC file inside,
// building a catalog of records in filesystem scan order.
//
// Unreadable subdirectories, unreadable files, and files without a
// version line are skipped with a warning; the scan continues with
// whatever it can read. An unreadable root is fatal, since nothing can
// proceed with zero data. A whitelisted directory absent on disk
// contributes zero records, silently.
//
// Scan performs no writes and holds no state: it is a pure loading
// function returning a catalog value plus warnings.
func Scan(fsys afero.Fs, cfg *config.Config, verbose VerboseFunc) (*Catalog, []string, error) {
	if verbose == nil {
		verbose = func(string, ...interface{}) {}
	}

	debug.DebugSection("addon scan")
	debug.DebugValue("root", cfg.AddonsDirectory)
	debug.DebugValue("whitelist", cfg.WhitelistedAddons)

	entries, err := afero.ReadDir(fsys, cfg.AddonsDirectory)
	if err != nil {
		return nil, nil, &ScanError{Root: cfg.AddonsDirectory, Cause: err}
	}

	var records []Record
	var warnings []string

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !cfg.IsWhitelisted(name) {
			verbose("skipping %s: not whitelisted", name)
			continue
		}

		dir := filepath.Join(cfg.AddonsDirectory, name)
		verbose("scanning %s", dir)

		files, err := afero.ReadDir(fsys, dir)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("cannot read directory %s: %v", dir, err))
			continue
		}

		for _, file := range files {
			if file.IsDir() || !strings.HasSuffix(file.Name(), MetadataExtension) {
				continue
			}
			path := filepath.Join(dir, file.Name())

			data, err := afero.ReadFile(fsys, path)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("cannot read %s: %v", path, err))
				continue
			}
			content := string(data)

			version, ok := ExtractVersion(content)
			if !ok {
				warnings = append(warnings, fmt.Sprintf("no version line in %s", path))
				continue
			}

			verbose("found %s (version %s)", path, version)
			records = append(records, Record{
				Path:       path,
				RawContent: content,
				Version:    version,
				AddonName:  name,
			})
		}
	}

	debug.DebugValue("records", len(records))
	return NewCatalog(records), warnings, nil
}
