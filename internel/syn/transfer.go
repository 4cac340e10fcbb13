package syn

import (
	"github.com/pkg/errors"
	"github.com/segmentio/ksuid"
	"github.com/spf13/afero"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	. "winsync/internel/log"
	. "winsync/internel/shared"
)

// Execute runs every action in order. A failed copy is recorded and the next
// action is still attempted; nothing is rolled back.
func Execute(fs afero.Fs, actions []Action) Result {
	res := Result{Outcomes: make([]Outcome, 0, len(actions))}
	for _, a := range actions {
		Log.Infoln(a.Source, "-->", a.Dest)
		err := CopyFile(fs, a.Source, a.Dest)
		if err != nil {
			Log.Errorln("cannot transfer file:", err)
			res.Failed++
		}
		res.Attempted++
		res.Outcomes = append(res.Outcomes, Outcome{Action: a, Err: err})
	}
	return res
}

var ErrDestLink = errors.New("destination is a symlink")

var tmpPattern = regexp.MustCompile(`^\..+\.[0-9A-Za-z]{27}\` + TmpSuffix + `$`)

// IsTempName reports whether name has the shape of an interrupted copy.
func IsTempName(name string) bool {
	return tmpPattern.MatchString(name)
}

// CopyFile copies src to dst through a temp file in dst's directory, carrying
// over permission bits and modification time. A symlink at dst is never
// replaced.
func CopyFile(fs afero.Fs, src, dst string) error {
	if err := checkDest(fs, dst); err != nil {
		return err
	}

	source, err := fs.Open(src)
	if err != nil {
		return errors.Wrapf(err, "open %s", src)
	}
	defer func(f afero.File) {
		if err := f.Close(); err != nil {
			Log.Warnln("close file error", err)
		}
	}(source)

	info, err := source.Stat()
	if err != nil {
		return errors.Wrapf(err, "stat %s", src)
	}
	if !info.Mode().IsRegular() {
		return errors.Errorf("%s is not a regular file", src)
	}

	tmp := tmpName(dst)
	dest, err := fs.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return errors.Wrapf(err, "create %s", tmp)
	}

	if _, err := io.Copy(dest, source); err != nil {
		_ = dest.Close()
		_ = fs.Remove(tmp)
		return errors.Wrapf(err, "copy %s", src)
	}
	if err := dest.Close(); err != nil {
		_ = fs.Remove(tmp)
		return errors.Wrapf(err, "close %s", tmp)
	}

	if err := finish(fs, tmp, dst, info); err != nil {
		_ = fs.Remove(tmp)
		return err
	}
	return nil
}

func checkDest(fs afero.Fs, dst string) error {
	l, ok := fs.(afero.Lstater)
	if !ok {
		return nil
	}
	info, _, err := l.LstatIfPossible(dst)
	if err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			return nil
		}
		return errors.Wrapf(err, "lstat %s", dst)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return errors.Wrapf(ErrDestLink, "%s", dst)
	}
	return nil
}

func finish(fs afero.Fs, tmp, dst string, info os.FileInfo) error {
	if err := fs.Chmod(tmp, info.Mode().Perm()); err != nil {
		return errors.Wrapf(err, "chmod %s", tmp)
	}
	t := info.ModTime()
	if err := fs.Chtimes(tmp, t, t); err != nil {
		return errors.Wrapf(err, "chtimes %s", tmp)
	}
	if err := fs.Rename(tmp, dst); err != nil {
		return errors.Wrapf(err, "rename %s", dst)
	}
	return nil
}

func tmpName(dst string) string {
	dir, name := filepath.Split(dst)
	id := ksuid.New().String()
	return filepath.Join(dir, strings.Join([]string{HiddenPrefix + name, id}, ".")+TmpSuffix)
}
