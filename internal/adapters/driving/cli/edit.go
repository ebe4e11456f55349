package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/scribe-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/scribe-cli/internal/adapters/driven/docengine/memory"
	"github.com/custodia-labs/scribe-cli/internal/adapters/driven/llm/openai"
	"github.com/custodia-labs/scribe-cli/internal/adapters/driven/websearch/duckduckgo"
	"github.com/custodia-labs/scribe-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/scribe-cli/internal/core/ports/driven"
	"github.com/custodia-labs/scribe-cli/internal/core/services"
	"github.com/custodia-labs/scribe-cli/internal/logger"
)

// defaultSeedText is the document content shown on first launch.
const defaultSeedText = "Hello! This is your collaborative editor. " +
	"Select some text and try 'Edit with AI'."

// editCmd opens the editor explicitly. The root command aliases to it.
var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the editor with the assistant pane",
	RunE:  runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

//nolint:funlen // wiring the full dependency graph is inherently sequential
func runEdit(cmd *cobra.Command, _ []string) error {
	// Panic recovery keeps the stack trace visible after the alt screen closes
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in editor: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	dir, err := resolveConfigDir()
	if err != nil {
		return fmt.Errorf("resolving config directory: %w", err)
	}

	configStore, err := file.NewConfigStore(dir)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	promptStore, err := file.NewPromptStore(filepath.Join(dir, "prompts"))
	if err != nil {
		return fmt.Errorf("loading prompts: %w", err)
	}
	if err := promptStore.Watch(); err != nil {
		logger.Warn("Prompt hot-reload unavailable: %v", err)
	}
	defer func() {
		if err := promptStore.Close(); err != nil {
			logger.Warn("Closing prompt store: %v", err)
		}
	}()

	generativeService := buildGenerativeService(configStore)
	if generativeService != nil {
		defer func() { _ = generativeService.Close() }()
	}

	searchService := buildSearchService(configStore)
	defer func() { _ = searchService.Close() }()

	seed := configStore.GetString(file.KeyEditorSeedText)
	if seed == "" {
		seed = defaultSeedText
	}
	engine := memory.NewEngine(seed)

	ports := tui.NewPorts(
		services.NewConversationService(searchService, generativeService),
		services.NewRewriteService(generativeService, promptStore),
		services.NewDocumentService(engine),
	)

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("creating editor: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := app.Run(); err != nil {
		return fmt.Errorf("editor error: %w", err)
	}
	return nil
}

// buildGenerativeService constructs the LLM backend from configuration.
// Returns nil when no API key is configured; the conversation and
// rewrite services degrade to their fixed error replies.
func buildGenerativeService(configStore *file.ConfigStore) driven.GenerativeService {
	apiKey := configStore.GetString(file.KeyLLMAPIKey)
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		logger.Warn("No LLM API key configured; AI features disabled")
		return nil
	}

	service, err := openai.NewService(openai.Config{
		APIKey:  apiKey,
		BaseURL: configStore.GetString(file.KeyLLMBaseURL),
		Model:   configStore.GetString(file.KeyLLMModel),
		Timeout: 120 * time.Second,
	})
	if err != nil {
		logger.Warn("LLM backend unavailable: %v", err)
		return nil
	}
	logger.Info("Using LLM model %s", service.ModelName())
	return service
}

// buildSearchService constructs the web search backend from configuration.
func buildSearchService(configStore *file.ConfigStore) driven.WebSearchService {
	return duckduckgo.NewService(duckduckgo.Config{
		BaseURL:           configStore.GetString(file.KeySearchBaseURL),
		RequestsPerSecond: configStore.GetFloat(file.KeySearchRPS),
	})
}
