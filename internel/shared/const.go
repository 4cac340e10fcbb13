package shared

const (
	DefaultLink       = "Windows"
	DefaultDevice     = "/dev/sda3"
	DefaultMountPoint = "/Windows"
	DefaultFstype     = "fuseblk"

	// HiddenPrefix marks files that are never pushed to side B.
	HiddenPrefix = "."

	TmpSuffix = ".tmp"
)
