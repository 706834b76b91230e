// Command reverso is a small lookup CLI on top of the go-reverso-context
// library.
//
// Usage:
//
//	reverso -s de -t en translate braucht
//	reverso -s en -t de samples "cellar door"
//	reverso -s de -t en suggest bew
//	reverso -s en -t ru -email ... favorites
//	reverso -s en -t ru -email ... history
//
// Results are printed to stdout, one per line; logs go to stderr when -v is
// set.
package main

import (
	"context"
	"fmt"
	"os"

	reverso "github.com/MKhiriev/go-reverso-context"
	"github.com/MKhiriev/go-reverso-context/internal/config"
	"github.com/MKhiriev/go-reverso-context/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, args, err := config.GetCLIConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "reverso: %v\n", err)
		usage()
		os.Exit(2)
	}

	log := logger.Nop()
	if cfg.Verbose {
		log = logger.NewLogger("reverso-cli")
		printBuildInfo(log)
	}

	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	var creds *reverso.Credentials
	if cfg.Account.Email != "" {
		creds = &reverso.Credentials{Email: cfg.Account.Email, Password: cfg.Account.Password}
	}

	client, err := reverso.New(reverso.Config{
		SourceLang:     cfg.Languages.Source,
		TargetLang:     cfg.Languages.Target,
		Credentials:    creds,
		UserAgent:      cfg.HTTP.UserAgent,
		RequestTimeout: cfg.HTTP.RequestTimeout,
		BaseURL:        cfg.HTTP.BaseURL,
		LoginURL:       cfg.HTTP.LoginURL,
		Logger:         &log.Logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "reverso: %v\n", err)
		os.Exit(1)
	}

	if err = run(context.Background(), client, args); err != nil {
		fmt.Fprintf(os.Stderr, "reverso: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, client *reverso.Client, args []string) error {
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "translate":
		if len(rest) != 1 {
			return fmt.Errorf("translate expects exactly one word or phrase")
		}
		it := client.Translations(ctx, rest[0])
		for it.Next() {
			fmt.Println(it.Value().Term)
		}
		return it.Err()

	case "samples":
		if len(rest) != 1 {
			return fmt.Errorf("samples expects exactly one word or phrase")
		}
		it := client.TranslationSamples(ctx, rest[0], reverso.WithCleanup(true))
		for it.Next() {
			sample := it.Value()
			fmt.Printf("%s\t%s\n", sample.SourceText, sample.TargetText)
		}
		return it.Err()

	case "suggest":
		if len(rest) != 1 {
			return fmt.Errorf("suggest expects exactly one prefix")
		}
		it := client.SearchSuggestions(ctx, rest[0])
		for it.Next() {
			fmt.Println(it.Value())
		}
		return it.Err()

	case "favorites":
		it := client.Favorites(ctx)
		for it.Next() {
			entry := it.Value()
			fmt.Printf("%s\t%s\t%s\t%s\n", entry.SourceLang, entry.SourceText, entry.TargetLang, entry.TargetText)
		}
		return it.Err()

	case "history":
		it := client.History(ctx)
		for it.Next() {
			entry := it.Value()
			fmt.Printf("%s\t%s\t%s\t%v\n", entry.SourceLang, entry.SourceText, entry.TargetLang, entry.Translations)
		}
		return it.Err()

	default:
		usage()
		return fmt.Errorf("unknown subcommand %q", cmd)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: reverso -s <source> -t <target> [flags] <subcommand> [text]

subcommands:
  translate <text>   translations of a word or phrase
  samples   <text>   bilingual context examples
  suggest   <prefix> search suggestions
  favorites          saved entries (requires -email and account password)
  history            search history (requires -email and account password)`)
}

func printBuildInfo(log *logger.Logger) {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	log.Info().
		Str("version", buildVersion).
		Str("date", buildDate).
		Str("commit", buildCommit).
		Msg("build info")
}
