// Package main provides the shopnav command line interface: short text
// commands, Korean shopping phrases, or free natural language are resolved
// into browser tool calls and executed against a shared Chromium session.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"shopnav/pkg/browser"
	"shopnav/pkg/config"
	"shopnav/pkg/lexicon"
	"shopnav/pkg/llm"
	"shopnav/pkg/llm/openai"
	"shopnav/pkg/logging"
	"shopnav/pkg/resolver"
	"shopnav/pkg/sites"
	"shopnav/pkg/tools"
	"shopnav/pkg/translate"
)

const version = "0.1.0"

// cliFlags holds the command line configuration.
type cliFlags struct {
	ConfigPath  string
	CDPURL      string
	NoCDP       bool
	Model       string
	ShowVersion bool
}

func main() {
	flags := parseFlags()
	if flags.ShowVersion {
		fmt.Printf("shopnav v%s\n", version)
		return
	}

	loadDotenv(".env")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nshutting down...")
		cancel()
	}()

	if err := run(ctx, flags); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() *cliFlags {
	flags := &cliFlags{}
	flag.StringVar(&flags.ConfigPath, "config", defaultConfigPath(), "Path to the config file")
	flag.StringVar(&flags.CDPURL, "cdp-url", "", "Chrome debugging URL to attach to (overrides config)")
	flag.BoolVar(&flags.NoCDP, "no-cdp", false, "Launch a persistent browser profile instead of attaching over CDP")
	flag.StringVar(&flags.Model, "model", "", "LLM model for natural language fallback (overrides config)")
	flag.BoolVar(&flags.ShowVersion, "version", false, "Show version and exit")
	flag.Parse()
	return flags
}

func defaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(homeDir, ".shopnav", "config.json")
}

func run(ctx context.Context, flags *cliFlags) error {
	if err := config.Initialize(flags.ConfigPath); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// NewLogger degrades to stderr when the log directory is unusable, so the
	// returned logger is always usable.
	logger, _ := logging.NewLogger("cli")
	defer logger.Close()

	browserCfg := config.GetBrowser()
	if flags.CDPURL != "" {
		browserCfg.CDPURL = flags.CDPURL
	}
	if flags.NoCDP {
		browserCfg.UseCDP = false
	}

	session := browser.NewSession(browser.OptionsFromConfig(browserCfg), logger)
	defer session.Close()

	registry := tools.NewRegistry()
	if err := registry.RegisterAll(browser.RegisterTools(session)); err != nil {
		return err
	}
	dispatcher := tools.NewDispatcher(registry, logger)

	translator := translate.New(newProvider(flags, logger), logger)
	commands := resolver.New(sites.Registered(), translator)

	return repl(ctx, commands, dispatcher)
}

// newProvider builds the LLM provider for natural language fallback, or nil
// when no API key is available. Resolution still works without it; only free
// text that no rule matches becomes unmappable.
func newProvider(flags *cliFlags, logger *logging.Logger) llm.Provider {
	llmCfg := config.GetLLM()
	apiKey := llmCfg.GetAPIKey()
	if apiKey == "" {
		logger.Infof("no API key configured, natural language fallback disabled")
		return nil
	}

	model := llmCfg.GetModel()
	if flags.Model != "" {
		model = flags.Model
	}

	provider, err := openai.NewProvider(apiKey,
		openai.WithModel(model),
		openai.WithBaseURL(llmCfg.GetBaseURL()),
	)
	if err != nil {
		logger.Warnf("llm provider unavailable: %v", err)
		return nil
	}
	logger.Infof("llm fallback enabled model=%s", provider.GetModel())
	return provider
}

// repl reads lines until EOF or exit. Empty input defaults to reading the
// page text, which makes bare Enter a cheap "where am I" probe.
func repl(ctx context.Context, commands *resolver.Resolver, dispatcher *tools.Dispatcher) error {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 64*1024), 64*1024)

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			line = "text"
		}
		switch strings.ToLower(line) {
		case "exit", "quit":
			return nil
		case "help":
			printHelp()
			continue
		}

		batch := commands.Resolve(ctx, line, dispatcher.LastURL())
		if len(batch) == 0 {
			fmt.Println("Could not map input to a tool. Try a command or set OPENAI_API_KEY.")
			continue
		}

		results, err := dispatcher.Dispatch(ctx, batch)
		for _, result := range results {
			fmt.Println(result)
		}
		if err != nil {
			fmt.Printf("error: %v\n", err)
		}
	}
}

func printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  start [headless]")
	fmt.Println("  open <url>")
	fmt.Println("  click <selector>")
	fmt.Println("  fill <selector> <text>")
	fmt.Println("  press <selector> <key>")
	fmt.Println("  wait <ms>")
	fmt.Println("  scroll <pixels>")
	fmt.Println("  humanize [steps]")
	fmt.Println("  text [max_chars]")
	fmt.Println("  buttons [max_items]")
	fmt.Println("  shot <path>")
	fmt.Println("  switch")
	fmt.Println("  close")
	fmt.Println("  exit | quit")
	fmt.Println()
	fmt.Println("Free text mentioning one of these actions clicks the matching page element:")
	keys := make([]string, 0, len(lexicon.Entries()))
	for _, entry := range lexicon.Entries() {
		keys = append(keys, entry.Key)
	}
	fmt.Println("  " + strings.Join(keys, ", "))
	fmt.Println("Anything else goes to the site rules or the LLM fallback.")
}

// loadDotenv loads KEY=VALUE pairs from a local .env file into the process
// environment without overriding variables that are already set.
func loadDotenv(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	for _, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if _, exists := os.LookupEnv(key); !exists {
			os.Setenv(key, strings.TrimSpace(value))
		}
	}
}
