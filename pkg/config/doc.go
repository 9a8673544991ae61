// Package config loads the backup configuration.
//
// The configuration file normally is backup.ini next to the executable. Keys
// are read from its DEFAULT section (keys before any section header):
//
//	paths    = /home/me/documents, /home/me/projects
//	excludes = tmp, log
//	clean    = false
//
// TOML (.toml) and YAML (.yaml, .yml) files with the same keys are accepted
// as well. Sources are layered with koanf: embedded defaults, then the file,
// then BACKUP_PATHS, BACKUP_EXCLUDES and BACKUP_CLEAN from the environment.
//
// List values given as a single string are split on commas and trimmed.
// clean is enabled only by the string "true" in any letter case, or by a
// native boolean true.
package config
