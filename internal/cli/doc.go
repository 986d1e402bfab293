// Package cli defines the Cobra command tree for the webdevenv CLI. Each file
// registers one top-level command (new, doctor, config, version) with the
// root command. Commands resolve settings through internal/config and
// delegate the work to internal/scaffold and internal/pkgmgr.
package cli
