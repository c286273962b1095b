package app

import (
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
)

// progress wraps f in a byte progress bar when enabled. The returned func
// finishes the bar and must be called once the scan ends.
func (a *App) progress(f *os.File) (io.Reader, func()) {
	if !a.cfg.Progress {
		return f, func() {}
	}

	var size int64
	if fi, err := f.Stat(); err == nil {
		size = fi.Size()
	}

	bar := pb.New64(size)
	bar.SetTemplate(pb.Full)
	bar.SetWriter(a.cfg.ProgressOut)
	bar.Set(pb.Bytes, true)
	bar.Start()

	return bar.NewProxyReader(f), func() { bar.Finish() }
}
