// Command did-nostr derives did:nostr documents from BIP-39 mnemonics.
package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/did-nostr/cmd/did-nostr/cli"
	"github.com/yourusername/did-nostr/pkg/did"
	"github.com/yourusername/did-nostr/pkg/keys"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	app := &cli.App{
		Out:       os.Stdout,
		Logger:    logger,
		KeySource: keys.RandomKeySource{},
		Resolver:  did.StubResolver{},
	}

	if err := app.RootCmd().Execute(); err != nil {
		logger.WithError(err).Error("did-nostr failed")
		os.Exit(1)
	}
}
