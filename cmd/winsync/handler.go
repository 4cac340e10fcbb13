package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"winsync/internel/fs"
	. "winsync/internel/log"
	"winsync/internel/mount"
	. "winsync/internel/shared"
	"winsync/internel/syn"
)

// checkMode applies the remote mount writability to the requested mode.
func checkMode(conf *Config, checker mount.Checker) (Mode, error) {
	if conf.SkipMount {
		return conf.Mode, nil
	}
	writable, err := checker.Writable(conf.Target())
	if err != nil {
		Log.Warnln("mount check failed, assuming read-only:", err)
		writable = false
	}

	mode, err := syn.RestrictMode(conf.Mode, writable)
	if err != nil {
		Log.Errorln("Windows partition mounted as read-only.")
		return mode, err
	}
	if mode != conf.Mode {
		Log.Warnln("Windows partition mounted as read-only. Pulling only")
	}
	return mode, nil
}

func doSync(conf *Config, fsys afero.Fs, checker mount.Checker) (Result, error) {
	mode, err := checkMode(conf, checker)
	if err != nil {
		return Result{}, err
	}

	remoteDir, err := fs.ResolveRemote(fsys, conf.Dir, conf.Link)
	if err != nil {
		Log.Errorln("Windows symlink not found :(")
		Log.Debugln(err)
		return Result{}, err
	}

	local, err := fs.CollectFileList(fsys, conf.Dir)
	if err != nil {
		Log.Errorln("CollectFileList error", err)
		return Result{}, err
	}
	remote, err := fs.CollectFileList(fsys, remoteDir)
	if err != nil {
		Log.Errorln("CollectFileList error", err)
		return Result{}, err
	}

	// The link name is reserved on both sides.
	local.Remove(conf.Link)
	remote.Remove(conf.Link)

	plan := syn.Reconcile(local, remote, mode)

	res := syn.Execute(fsys, plan.Pull)
	res = res.Add(syn.Execute(fsys, plan.Push))

	Log.Infof("Transferred %d/%d files", res.Succeeded(), res.Attempted)
	return res, nil
}

// exitCode maps a run error to the process status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	Log.Debugln("exit:", errors.Cause(err))
	return 1
}
