package cli

import (
	"time"

	"capmatrix/internal/config"
)

// Flags holds command-line flags
type Flags struct {
	ConfigFile      string
	EnvFile         string
	Verbose         bool
	MirrorPath      string
	Bucket          string
	ProjectID       string
	CredentialsFile string
	UploadTimeout   time.Duration
	Filter          string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ConfigFile:      f.ConfigFile,
		EnvFile:         f.EnvFile,
		Verbose:         f.Verbose,
		MirrorPath:      f.MirrorPath,
		Bucket:          f.Bucket,
		ProjectID:       f.ProjectID,
		CredentialsFile: f.CredentialsFile,
		UploadTimeout:   f.UploadTimeout,
		Filter:          f.Filter,
	}
}
