// Package app composes the configuration source, the metadata repository,
// the version calculator, the file mutator, and the release recorder into
// the user-facing workflows. Each workflow takes an Options value and
// returns a Result value; presentation stays in the cli layer.
package app

import (
	"github.com/spf13/afero"

	"github.com/wowkit/tocbump/internal/addon"
	"github.com/wowkit/tocbump/internal/config"
)

// ShowOptions contains options for the show and list workflows.
type ShowOptions struct {
	// Fs is the filesystem the scan reads from.
	Fs afero.Fs
	// Config is the loaded configuration.
	Config *config.Config
	// Addon filters the result to one addon when non-empty.
	Addon string
	// Verbose receives extra scan diagnostics when set.
	Verbose addon.VerboseFunc
}

// AddonGroup is one addon's records plus its consistency state.
type AddonGroup struct {
	// Name is the addon name.
	Name string
	// Records are the addon's records in scan order.
	Records []addon.Record
	// Versions are the distinct versions across the records.
	Versions []string
	// Inconsistent is true when the records disagree on the version.
	// Divergence is reported, never auto-corrected.
	Inconsistent bool
}

// ShowResult contains the result of the show workflow.
type ShowResult struct {
	// Groups are the addon groups in scan order.
	Groups []AddonGroup
	// Warnings are non-fatal scan problems.
	Warnings []string
}

// ShowVersions scans the addons root and groups records by addon,
// optionally filtered to a single addon. An empty result for a requested
// addon is not an error; the caller reports it.
func ShowVersions(opts ShowOptions) (*ShowResult, error) {
	catalog, warnings, err := addon.Scan(opts.Fs, opts.Config, opts.Verbose)
	if err != nil {
		return nil, NewScanError(err)
	}

	result := &ShowResult{Warnings: warnings}
	for _, name := range catalog.AddonNames() {
		if opts.Addon != "" && name != opts.Addon {
			continue
		}
		versions := catalog.DistinctVersions(name)
		result.Groups = append(result.Groups, AddonGroup{
			Name:         name,
			Records:      catalog.ForAddon(name),
			Versions:     versions,
			Inconsistent: len(versions) > 1,
		})
	}
	return result, nil
}

// AddonCount is one addon name with its metadata file count.
type AddonCount struct {
	Name  string
	Files int
}

// ListResult contains the result of the list workflow.
type ListResult struct {
	// Addons are the distinct addons with per-addon file counts.
	Addons []AddonCount
	// Warnings are non-fatal scan problems.
	Warnings []string
}

// ListAddons scans the addons root and counts metadata files per addon.
func ListAddons(opts ShowOptions) (*ListResult, error) {
	catalog, warnings, err := addon.Scan(opts.Fs, opts.Config, opts.Verbose)
	if err != nil {
		return nil, NewScanError(err)
	}

	result := &ListResult{Warnings: warnings}
	for _, name := range catalog.AddonNames() {
		result.Addons = append(result.Addons, AddonCount{
			Name:  name,
			Files: len(catalog.ForAddon(name)),
		})
	}
	return result, nil
}
