package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/option-surfaces/src/api"
	"github.com/jiaming2012/option-surfaces/src/marketdata"
	"github.com/jiaming2012/option-surfaces/src/utils"
)

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/server/main.go --port 8080",
	Short: "Serve the option pricing and surfaces API",
	Run: func(cmd *cobra.Command, args []string) {
		port, err := cmd.Flags().GetString("port")
		if err != nil {
			log.Fatalf("error getting port: %v", err)
		}

		if err := utils.InitEnvironmentVariables(); err != nil {
			log.Warnf("error loading environment variables: %v", err)
		}

		cacheDir := os.Getenv("CLOSES_CACHE_DIR")
		if cacheDir == "" {
			cacheDir = "data"
		}

		service := marketdata.NewHistoryService(os.Getenv("POLYGON_API_KEY"), cacheDir)

		router := mux.NewRouter()
		api.SetupHandlers(router.PathPrefix("/options").Subrouter(), service)

		srv := &http.Server{
			Addr:         fmt.Sprintf(":%s", port),
			Handler:      router,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		}

		log.Infof("listening on :%s", port)
		log.Fatal(srv.ListenAndServe())
	},
}

func main() {
	runCmd.Flags().String("port", "8080", "Port to listen on")

	runCmd.Execute()
}
