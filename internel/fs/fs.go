package fs

import (
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"path/filepath"
	. "winsync/internel/log"
	. "winsync/internel/shared"
)

var ErrRemoteNotFound = errors.New("remote link not found")

// CollectFileList lists the regular files directly inside dir. Directories,
// symlinks and special files are skipped. Mod times are truncated to seconds.
func CollectFileList(fs afero.Fs, dir string) (Listing, error) {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return Listing{}, errors.Wrapf(err, "collect %s", dir)
	}

	list := NewListing(dir)
	for _, info := range infos {
		if !info.Mode().IsRegular() {
			continue
		}
		list.Add(info.Name(), info.ModTime().Unix())
	}
	Log.Debugf("collected %d files from %s", len(list.Files), dir)
	return list, nil
}

// ResolveRemote returns the side B directory reached through the link named
// link inside dir.
func ResolveRemote(fs afero.Fs, dir, link string) (string, error) {
	p := filepath.Join(filepath.Clean(dir), link)
	info, err := fs.Stat(p)
	if err != nil {
		return "", errors.Wrapf(ErrRemoteNotFound, "%s: %v", p, err)
	}
	if !info.IsDir() {
		return "", errors.Wrapf(ErrRemoteNotFound, "%s is not a directory", p)
	}
	return p, nil
}
