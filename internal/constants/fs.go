// Package constants holds shared filesystem constants.
package constants

import "os"

const (
	// DefaultFilePermissions sets the default permissions for regular files: (rw-r--r--).
	DefaultFilePermissions os.FileMode = 0o644

	// DefaultSecretFilePermissions sets the permissions for files holding credentials: (rw-------).
	// Refresh tokens grant long-lived account access, so only the owner may read the slot.
	DefaultSecretFilePermissions os.FileMode = 0o600

	// DefaultFolderPermissions sets the default permissions for regular folders: (rwxr-xr-x).
	DefaultFolderPermissions os.FileMode = 0o755
)
