package main

import (
	"net/http"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/nabilervatra/minipokersolver/internal/httpapi"
)

type CLI struct {
	Addr string `short:"a" help:"Address to listen on." default:":8080"`
	Seed int64  `short:"s" help:"Seed for the engine's random generator." default:"1337"`
}

func main() {
	var cli CLI
	kong.Parse(&cli)

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "holdem-server",
	})

	srv := httpapi.NewServer(cli.Seed, logger)
	logger.Info("listening", "addr", cli.Addr)
	if err := http.ListenAndServe(cli.Addr, srv.Router()); err != nil {
		logger.Fatal("server exited", "error", err)
	}
}
