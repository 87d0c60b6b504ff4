// Package velocli defines shared defaults for the velociraptor api client.
package velocli

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultConfigDir directory holding api client credential files,
	// relative to the user configuration directory.
	DefaultConfigDir = "velociraptor"
	// DefaultConfigName name of the credential file for the default instance.
	DefaultConfigName = "apiclient.yaml"
)

// LocateConfig resolves the credential file for the given instance.
// an empty instance resolves to the default credential file, matching
// the files written by `velociraptor config api_client`.
func LocateConfig(instance string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}

	if instance == "" {
		return filepath.Join(dir, DefaultConfigDir, DefaultConfigName)
	}

	return filepath.Join(dir, DefaultConfigDir, fmt.Sprintf("apiclient-%s.yaml", instance))
}
