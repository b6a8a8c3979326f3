package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	server "github.com/jiaming2012/deribit-viewer/src/cmd"
	"github.com/jiaming2012/deribit-viewer/src/eventmodels"
	"github.com/jiaming2012/deribit-viewer/src/eventservices"
	"github.com/jiaming2012/deribit-viewer/src/utils"
)

type RunArgs struct {
	GoEnv      string
	ConfigFile string
	Addr       string
	BaseURL    string
	WSURL      string
	Transport  string
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/dashboard/main.go",
	Short: "Serve the Deribit option price viewer dashboard",
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		configFile, err := cmd.Flags().GetString("config")
		if err != nil {
			log.Fatalf("error getting config: %v", err)
		}

		addr, err := cmd.Flags().GetString("addr")
		if err != nil {
			log.Fatalf("error getting addr: %v", err)
		}

		baseURL, err := cmd.Flags().GetString("deribit-url")
		if err != nil {
			log.Fatalf("error getting deribit-url: %v", err)
		}

		wsURL, err := cmd.Flags().GetString("deribit-ws-url")
		if err != nil {
			log.Fatalf("error getting deribit-ws-url: %v", err)
		}

		transport, err := cmd.Flags().GetString("transport")
		if err != nil {
			log.Fatalf("error getting transport: %v", err)
		}

		if err := Run(RunArgs{
			GoEnv:      goEnv,
			ConfigFile: configFile,
			Addr:       addr,
			BaseURL:    baseURL,
			WSURL:      wsURL,
			Transport:  transport,
		}); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

// Run builds the effective configuration in increasing order of precedence:
// built-in defaults, the optional YAML file, .env variables, then flags.
func Run(args RunArgs) error {
	if os.Getenv("ENV") != "production" {
		projectsDir := os.Getenv("PROJECTS_DIR")
		if projectsDir == "" {
			log.Fatalf("missing PROJECTS_DIR environment variable")
		}

		if err := utils.InitEnvironmentVariables(projectsDir, args.GoEnv); err != nil {
			log.Fatalf("error loading environment variables: %v", err)
		}
	}

	var config eventmodels.ViewerConfigYAML

	if args.ConfigFile != "" {
		data, err := os.ReadFile(args.ConfigFile)
		if err != nil {
			return fmt.Errorf("failed to read viewer config: %v", err)
		}

		if err := yaml.Unmarshal(data, &config); err != nil {
			return fmt.Errorf("failed to unmarshal viewer config: %v", err)
		}
	}

	config.ApplyDefaults()

	if baseURL, err := utils.GetEnv("DERIBIT_HISTORY_URL"); err == nil {
		config.DeribitBaseURL = baseURL
	}

	if wsURL, err := utils.GetEnv("DERIBIT_WS_URL"); err == nil {
		config.DeribitWSURL = wsURL
	}

	if args.Addr != "" {
		config.Addr = args.Addr
	}

	if args.BaseURL != "" {
		config.DeribitBaseURL = args.BaseURL
	}

	if args.WSURL != "" {
		config.DeribitWSURL = args.WSURL
	}

	if args.Transport != "" {
		config.Transport = args.Transport
	}

	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid viewer config: %v", err)
	}

	if serverTime, err := eventservices.FetchDeribitServerTime(config.DeribitBaseURL); err != nil {
		log.Warnf("deribit clock probe failed: %v", err)
	} else {
		log.Infof("deribit server time: %s", serverTime.UTC().Format(time.RFC3339))
	}

	var queryFn eventmodels.ChartDataQueryFunc
	switch config.Transport {
	case "ws":
		queryFn = eventservices.NewWSChartDataQueryFunc(config.DeribitWSURL, config.RequestTimeout())
	default:
		queryFn = eventservices.NewChartDataQueryFunc(config.DeribitBaseURL, config.RequestTimeout())
	}

	router := server.Setup(queryFn)

	ctx, cancel := context.WithCancel(context.Background())

	srv := &http.Server{
		Handler: router,
		Addr:    config.Addr,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		log.Infof("listening on %s", config.Addr)
		if err := srv.ListenAndServe(); err != nil {
			if err.Error() != "http: Server closed" {
				log.Fatalf("failed to start server: %v", err)
			}
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	signal.Notify(stop, syscall.SIGTERM)

	log.Info("Main: init complete")

	<-stop

	cancel()

	if err := srv.Shutdown(context.Background()); err != nil {
		log.Errorf("failed to shut down server: %v", err)
	}

	log.Info("Main: gracefully stopped!")

	return nil
}

func main() {
	runCmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in.")
	runCmd.PersistentFlags().String("config", "", "Path to a viewer config YAML file.")
	runCmd.PersistentFlags().String("addr", "", "Listen address. Defaults to :8080.")
	runCmd.PersistentFlags().String("deribit-url", "", "Deribit history API base URL.")
	runCmd.PersistentFlags().String("deribit-ws-url", "", "Deribit JSON-RPC websocket URL.")
	runCmd.PersistentFlags().String("transport", "", "Market data transport: http or ws. Defaults to http.")

	runCmd.Execute()
}
