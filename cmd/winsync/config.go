package main

import (
	"fmt"
	"github.com/jessevdk/go-flags"
	"io"
	"os"
	"path/filepath"
	"winsync/internel/mount"
	. "winsync/internel/shared"
)

type Config struct {
	Quiet     bool   `short:"q" long:"quiet" description:"quiet mode, print nothing"`
	Verbose   bool   `short:"v" long:"verbose" description:"print debug information"`
	Dir       string `short:"d" long:"dir" description:"local directory to synchronize, defaults to $CWD"`
	Mode      Mode   `short:"m" long:"mode" description:"sync mode: push, pull or both"`
	Link      string `long:"link" description:"name of the link inside the local directory pointing at the remote directory"`
	Device    string `long:"device" description:"block device expected behind the remote mount"`
	Mount     string `long:"mount-point" description:"mount point expected for the remote side"`
	Fstype    string `long:"fstype" description:"filesystem type expected for the remote mount"`
	SkipMount bool   `long:"skip-mount-check" description:"treat the remote side as writable without reading the mount table"`
}

func (c *Config) Target() mount.Target {
	return mount.Target{
		Device:     c.Device,
		Mountpoint: c.Mount,
		Fstype:     c.Fstype,
	}
}

// ParseConfig parses args into a Config. help is true when -h was given, in
// which case the usage text has already been written to out.
func ParseConfig(args []string, out io.Writer) (conf *Config, help bool, err error) {
	conf = &Config{
		Mode:   Both,
		Link:   DefaultLink,
		Device: DefaultDevice,
		Mount:  DefaultMountPoint,
		Fstype: DefaultFstype,
	}
	parser := flags.NewParser(conf, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = filepath.Base(os.Args[0])

	rest, err := parser.ParseArgs(args)
	if err != nil {
		if flags.WroteHelp(err) {
			_, _ = fmt.Fprintln(out, err.Error())
			return nil, true, nil
		}
		_, _ = fmt.Fprintln(out, "Error:", err.Error())
		parser.WriteHelp(out)
		return nil, false, err
	}
	if len(rest) > 0 {
		err = fmt.Errorf("unexpected arguments %v", rest)
		_, _ = fmt.Fprintln(out, "Error:", err.Error())
		parser.WriteHelp(out)
		return nil, false, err
	}

	if conf.Dir == "" {
		if conf.Dir, err = os.Getwd(); err != nil {
			return nil, false, err
		}
	}
	conf.Dir = filepath.Clean(conf.Dir)
	return conf, false, nil
}
