// wadweb serves a WAD archive's decoded assets over HTTP for browsing:
// an index of thumbnails plus per-asset PNG and animated-GIF endpoints.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"

	"badc0de.net/pkg/flagutil/v1"

	"badc0de.net/pkg/go-wad/assets/full"
	"badc0de.net/pkg/go-wad/web"

	"github.com/common-nighthawk/go-figure"
	"github.com/golang/glog"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"
)

var (
	listenAddress = flag.String("listen_address", ":8080", "http listen address for wadweb")
)

func main() {
	full.SetupFilePathFlags()
	flagutil.Parse()

	figure.NewFigure("wadweb", "", true).Print()

	reg, err := full.FromFilePathFlags()
	if err != nil {
		glog.Exitf("loading archive: %v", err)
	}
	glog.Infof("serving %d textures, %d flats, %d sprites from %q",
		len(reg.TextureNames()), len(reg.FlatNames()), len(reg.SpriteNames()),
		full.WadPathFlagValue())

	r := mux.NewRouter()
	web.NewHandler(reg).InstallHandlers(r)

	srv := &http.Server{
		Addr:    *listenAddress,
		Handler: handlers.CombinedLoggingHandler(os.Stdout, r),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		glog.Infof("listening on %s", *listenAddress)
		return srv.ListenAndServe()
	})
	g.Go(func() error {
		<-ctx.Done()
		return srv.Shutdown(context.Background())
	})
	if err := g.Wait(); err != nil && err != http.ErrServerClosed {
		glog.Exit(err)
	}
}
