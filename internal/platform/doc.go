// Package platform wraps the process-level state the scaffolder touches: the
// current working directory and Unix permission bits. The working directory
// is reached through the WorkDir interface so callers can swap in a fake.
package platform
