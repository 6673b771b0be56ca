package main

import (
	"context"
	"fmt"
	golog "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/omniscale/vgeos"
	"github.com/omniscale/vgeos/config"
	"github.com/omniscale/vgeos/geom/geos"
	"github.com/omniscale/vgeos/job"
	"github.com/omniscale/vgeos/log"
	"github.com/omniscale/vgeos/stats"
)

func PrintCmds() {
	fmt.Fprintf(os.Stderr, "Usage: %s COMMAND [args]\n\n", os.Args[0])
	fmt.Println("Available commands:")
	fmt.Println("\trun")
	fmt.Println("\tversion")
}

func Main(usage func()) {
	golog.SetFlags(golog.LstdFlags | golog.Lshortfile)

	if len(os.Args) <= 1 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "run":
		if len(os.Args) == 2 {
			config.UsageRun()
		}
		opts, errs := config.ParseRun(os.Args[2:])
		if len(errs) != 0 {
			config.ReportErrors(errs)
		}
		if opts.Quiet {
			log.SetMinLevel(log.LWarn)
		} else if opts.Debug {
			log.SetMinLevel(log.LDebug)
		}
		if opts.Httpprofile != "" {
			stats.StartHttpPProf(opts.Httpprofile)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		err := job.Run(ctx, opts)
		stop()
		geos.Teardown()
		if err != nil {
			log.Fatal("[fatal] ", err)
		}
	case "version":
		fmt.Println(vgeos.Version)
		os.Exit(0)
	default:
		usage()
		log.Fatalf("[fatal] invalid command: '%s'", os.Args[1])
	}
	os.Exit(0)
}

func main() {
	Main(PrintCmds)
}
