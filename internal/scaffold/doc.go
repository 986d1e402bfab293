// Package scaffold creates a front-end project skeleton. A Request names the
// base path and folder layout; its Plan resolves every path up front. The
// Scaffolder creates the tree, writes package.json and an optional
// gulpfile.js, then hands the package lists to a pkgmgr.Installer, once per
// base path.
package scaffold
