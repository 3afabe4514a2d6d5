package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/avicon"
	"github.com/xaionaro-go/avicon/framework"
	"github.com/xaionaro-go/avicon/framework/goimage"
	"github.com/xaionaro-go/avicon/framework/libav"
	"github.com/xaionaro-go/avicon/iconpath"
	"github.com/xaionaro-go/avicon/logger"
	"github.com/xaionaro-go/observability"
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "syntax: %s [options] [path-to-icon]\n", os.Args[0])
		pflag.PrintDefaults()
	}

	loggerLevel := logger.LevelWarning
	pflag.Var(&loggerLevel, "log-level", "Log level")
	backend := pflag.String("backend", "libav", "the decoder backend to use: libav or goimage")
	maxFileSize := pflag.String("max-file-size", humanize.IBytes(goimage.DefaultMaxFileSize), "the maximal size of an image file (goimage backend only)")
	dump := pflag.Bool("dump", false, "dump the decoded surface")
	netPprofAddr := pflag.String("net-pprof-listen-addr", "", "an address to listen for incoming net/pprof connections")
	pflag.Parse()
	if len(pflag.Args()) > 1 {
		pflag.Usage()
		os.Exit(1)
	}

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	ctx, cancelFn := context.WithCancel(ctx)
	defer cancelFn()
	logger.SetDefault(func() logger.Logger {
		return l
	})
	defer belt.Flush(ctx)

	if *netPprofAddr != "" {
		observability.Go(ctx, func(ctx context.Context) { l.Error(http.ListenAndServe(*netPprofAddr, nil)) })
	}

	var fw framework.Framework
	switch *backend {
	case "libav":
		libav.SetLoggerFromCtx(ctx)
		fw = libav.New()
	case "goimage":
		limit, err := humanize.ParseBytes(*maxFileSize)
		if err != nil {
			l.Fatalf("unable to parse the max file size '%s': %v", *maxFileSize, err)
		}
		goimageFW := goimage.New()
		goimageFW.MaxFileSize = int64(limit)
		fw = goimageFW
	default:
		l.Fatalf("unknown backend '%s'", *backend)
	}

	var (
		path string
		err  error
	)
	if pflag.NArg() > 0 {
		path, err = iconpath.FilePathFromURL(pflag.Arg(0))
	} else {
		path, err = iconpath.Default().Resolve(ctx)
	}
	if err != nil {
		l.Fatal(err)
	}

	l.Debugf("decoding '%s' with %s...", path, fw)
	s, err := avicon.NewDecoder(fw).Decode(ctx, path)
	if err != nil {
		if stageErr, ok := err.(avicon.StageError); ok {
			l.Fatalf("%s: %v", stageErr.Stage(), err)
		}
		l.Fatal(err)
	}
	defer avicon.Destroy(ctx, s)

	fmt.Printf(
		"%s: %dx%d, %s, %d bits per pixel, pitch %d, %s\n",
		path, s.Width, s.Height, s.Format, s.BitsPerPixel, s.Pitch,
		humanize.IBytes(uint64(len(s.Pixels))),
	)
	if *dump {
		header := *s
		header.Pixels = nil
		spew.Dump(header)
	}
}
