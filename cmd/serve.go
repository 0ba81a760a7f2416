package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/swatchkit/swatchkit/bridge"
	"github.com/swatchkit/swatchkit/color"
	"github.com/swatchkit/swatchkit/constant"
	"github.com/swatchkit/swatchkit/dom"
	"github.com/swatchkit/swatchkit/icon"
	"github.com/swatchkit/swatchkit/key"
	"github.com/swatchkit/swatchkit/log"
	"github.com/swatchkit/swatchkit/page"
	"github.com/swatchkit/swatchkit/session"
	"github.com/swatchkit/swatchkit/style"
	"github.com/swatchkit/swatchkit/swatch"
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", "", "Address to serve editors on")
	lo.Must0(viper.BindPFlag(key.ServeListen, serveCmd.Flags().Lookup("listen")))

	serveCmd.Flags().Bool("stdio", false, "Speak the editor protocol over stdin and stdout instead")
	serveCmd.Flags().StringP("output", "o", "", "Write the repainted document to this file after every redraw")
	serveCmd.Flags().Bool("protocol", false, "Describe the editor protocol and exit")
}

var serveCmd = &cobra.Command{
	Use:   "serve <file|url>",
	Short: "Let an editor inspect and recolor a document live",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("protocol")) {
			cmd.Println(constant.ProtocolHelp)
			return
		}

		if len(args) == 0 {
			handleErr(errors.New("a document to serve is required"))
		}

		doc, _, err := page.Load(cmd.Context(), args[0])
		handleErr(err)

		opts := session.Options{Output: os.Stdout}
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			opts.AfterRedraw = func(swatch.Set) {
				if err := writeDocument(doc, output); err != nil {
					log.Errorf("saving repainted document: %s", err)
				}
			}
		}

		if lo.Must(cmd.Flags().GetBool("stdio")) {
			handleErr(serveStdio(cmd.Context(), doc, opts))
			return
		}

		handleErr(serveHTTP(cmd.Context(), doc, opts, viper.GetString(key.ServeListen)))
	},
}

func serveStdio(ctx context.Context, doc *dom.Document, opts session.Options) error {
	s := session.New(doc.Root(), bridge.NewStdio(os.Stdout), opts)
	defer s.Close()

	err := s.Serve(ctx, bridge.ReadCommands(ctx, os.Stdin))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func serveHTTP(ctx context.Context, doc *dom.Document, opts session.Options, addr string) error {
	hub := bridge.NewHub()
	s := session.New(doc.Root(), hub, opts)
	defer s.Close()

	server := bridge.NewServer(s, hub, doc)
	mux := http.NewServeMux()
	server.Register(mux)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
		close(errs)
	}()

	go func() {
		_ = s.Serve(ctx, server.Commands())
	}()

	fmt.Printf("%s serving editors on %s\n", icon.Get(icon.Link), style.Fg(color.Cyan)("ws://"+addr+"/ws"))
	log.Infof("serving on %s", addr)

	select {
	case err := <-errs:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
	case <-ctx.Done():
	}

	server.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
