package main

import (
	"accountsite/cmd"
	"accountsite/config"
	"accountsite/log"
	"accountsite/routes"
	"fmt"
	"net/http"

	_ "net/http/pprof"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use: "accountsite",
		Run: func(_ *cobra.Command, _ []string) {
			runServer()
		},
	}
	rootCmd.AddCommand(cmd.Render)

	if err := rootCmd.Execute(); err != nil {
		panic(err)
	}
}

func runServer() {
	if config.Cfg.Env.IsDevOrTest() {
		// pprof
		go func() {
			fmt.Println(http.ListenAndServe("localhost:6060", nil))
		}()
	}

	log.Info().
		Str("env", config.Cfg.Env.String()).
		Str("addr", config.Cfg.Addr()).
		Msg("Started")
	if err := http.ListenAndServe(config.Cfg.Addr(), routes.NewRouter()); err != nil {
		panic(err)
	}
}
