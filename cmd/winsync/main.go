package main

import (
	"github.com/spf13/afero"
	"os"
	"time"
	. "winsync/internel/log"
	"winsync/internel/mount"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	conf, help, err := ParseConfig(args, os.Stdout)
	if help {
		return 0
	}
	if err != nil {
		return 1
	}

	InitLogger(conf.Quiet, conf.Verbose)
	defer Sync()

	ts := time.Now()
	_, err = doSync(conf, afero.NewOsFs(), mount.NewPartitionChecker())
	Log.Debugf("Sync End %v ms", time.Since(ts).Milliseconds())
	return exitCode(err)
}
