package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"promptclient/config"
	"promptclient/logging"
	"promptclient/prompt"
)

const examplePrompt = "What did you mean by molecular Dynamics"

func main() {
	logging.InitLogger(logrus.InfoLevel)
	log := logging.GetLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Debug {
		logging.InitLogger(logrus.DebugLevel)
	}

	run(context.Background(), os.Stdout, cfg)
}

// run sends the example prompt once and writes the answer to w.
func run(ctx context.Context, w io.Writer, cfg *config.Config) {
	client := prompt.NewClient(cfg)
	answer := client.Generate(ctx, examplePrompt, cfg.DefaultModel)
	fmt.Fprintln(w, answer)
}
