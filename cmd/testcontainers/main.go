package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/localnerve/imoveis/internal/testutil"
	"github.com/localnerve/imoveis/internal/utils"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	flag.Parse()

	usage := `
Run a disposable PostgreSQL for the imoveis service and print its DATABASE_URL.

Usage:

testcontainers [-h] [-f ENV_FILE_PATH]

ENV_FILE_PATH: path to the .env file

example
  testcontainers -f /path/to/something/.env
`
	// if -h flag print usage and return
	if showHelp {
		fmt.Println(usage)
		return
	}

	if envFilename != "" {
		log.Printf("Loading environment variables from %s\n", envFilename)
		if err := godotenv.Load(envFilename); err != nil {
			log.Fatalf("Failed to load environment variables: %v\n", err)
		}
	} else {
		log.Printf("No environment file specified, using current environment variables\n")
	}
	utils.InitLogger("imoveis-testcontainers", os.Getenv("LOG_LEVEL"))

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	pg, err := testutil.StartPostgres(context.Background(), nil)
	if err != nil {
		log.Fatalf("Failed to create test container: %v\n", err)
	}
	fmt.Printf("DATABASE_URL=%s\n", pg.URL)

	sig := <-sigs
	log.Printf("\nReceived signal: %v, terminating test container...\n", sig)
	pg.Terminate(nil)
}
