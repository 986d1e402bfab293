// Package pkgmgr drives the external JavaScript package manager. It knows the
// command lines of npm, pnpm and yarn, checks that the chosen manager is on the
// search path (and optionally new enough), and installs development and
// runtime packages one subprocess at a time under a configurable failure
// policy.
package pkgmgr
