// Command macros_token mints bearer tokens for editorial clients of the macros API.
// It signs with the same JWT_SECRET the server loads.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/newswire_macros/internal/platform/config"
	"github.com/SscSPs/newswire_macros/internal/utils"
	"github.com/spf13/pflag"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	clientID := pflag.StringP("client", "c", "", "client id stored as the token subject (required)")
	ttl := pflag.DurationP("ttl", "t", 30*24*time.Hour, "token lifetime")
	pflag.Parse()

	if *clientID == "" {
		pflag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	token, err := utils.IssueClientToken(*clientID, cfg.JWTSecret, *ttl, time.Now())
	if err != nil {
		logger.Error("Failed to issue token", slog.String("client", *clientID), slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Issued client token", slog.String("client", *clientID), slog.Duration("ttl", *ttl))
	fmt.Println(token)
}
