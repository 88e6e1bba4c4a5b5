// Package addon implements the metadata repository: discovery of addon
// TOC files under a configured root directory and the line-oriented
// version field rewrite.
package addon

// Record represents one discovered TOC metadata file.
type Record struct {
	// Path is the file location relative to the process working directory.
	// It is the unique key within a catalog.
	Path string
	// RawContent is the full text content at load time. It is a snapshot:
	// a bump writes new content to Path but does not refresh the record.
	RawContent string
	// Version is the extracted version field value. Extracted, not
	// validated; strict validation happens at bump time.
	Version string
	// AddonName is the owning subdirectory name.
	AddonName string
}

// Catalog is an ordered collection of records grouped by addon name.
// Every record's addon name is a member of the configured whitelist;
// non-whitelisted directories are excluded at scan time.
type Catalog struct {
	records []Record
}

// NewCatalog creates a catalog over the given records.
func NewCatalog(records []Record) *Catalog {
	return &Catalog{records: records}
}

// Records returns all records in scan order.
func (c *Catalog) Records() []Record {
	return c.records
}

// ForAddon returns the records owned by the named addon, in scan order.
func (c *Catalog) ForAddon(name string) []Record {
	var out []Record
	for _, r := range c.records {
		if r.AddonName == name {
			out = append(out, r)
		}
	}
	return out
}

// AddonNames returns the distinct addon names in first-encountered order.
func (c *Catalog) AddonNames() []string {
	var names []string
	seen := make(map[string]bool)
	for _, r := range c.records {
		if !seen[r.AddonName] {
			seen[r.AddonName] = true
			names = append(names, r.AddonName)
		}
	}
	return names
}

// DistinctVersions returns the distinct version strings carried by the
// named addon's records, in first-encountered order. More than one entry
// means the addon's files have diverged, which callers report as a
// warning but never auto-correct.
func (c *Catalog) DistinctVersions(name string) []string {
	var versions []string
	seen := make(map[string]bool)
	for _, r := range c.records {
		if r.AddonName != name {
			continue
		}
		if !seen[r.Version] {
			seen[r.Version] = true
			versions = append(versions, r.Version)
		}
	}
	return versions
}
