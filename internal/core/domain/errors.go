package domain

import "go.trai.ch/zerr"

var (
	// ErrVersionParse is reported when a declared dependency version cannot be parsed.
	ErrVersionParse = zerr.New("error parsing version")

	// ErrNoVersionGiven is reported when a version requirement is evaluated without a version.
	ErrNoVersionGiven = zerr.New("no version given")

	// ErrInvalidVersionFloor is returned when a version floor argument cannot be parsed.
	ErrInvalidVersionFloor = zerr.New("invalid version floor, expected major[.minor[.patch]]")

	// ErrVersionNotSatisfied is returned by check-version when the version is below the floor.
	ErrVersionNotSatisfied = zerr.New("version does not satisfy floor")

	// ErrManifestNotFound is returned when the project has no package.json.
	ErrManifestNotFound = zerr.New("could not find package.json")

	// ErrManifestReadFailed is returned when package.json cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read package.json")

	// ErrManifestParseFailed is returned when package.json is not valid JSON.
	ErrManifestParseFailed = zerr.New("failed to parse package.json")

	// ErrSettingsReadFailed is returned when the lintcfg settings file cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings file")

	// ErrSettingsParseFailed is returned when the lintcfg settings file cannot be parsed.
	ErrSettingsParseFailed = zerr.New("failed to parse settings file")

	// ErrUnknownFormat is returned when an unsupported output format is requested.
	ErrUnknownFormat = zerr.New("unknown output format, expected 'yaml', 'json' or 'table'")

	// ErrRenderFailed is returned when a configuration cannot be encoded.
	ErrRenderFailed = zerr.New("failed to render configuration")

	// ErrCacheStoreFailed is returned when the cache file cannot be read or written.
	ErrCacheStoreFailed = zerr.New("failed to access cache store")

	// ErrWatcherStartFailed is returned when the file watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start file watcher")
)
