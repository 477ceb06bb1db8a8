// Command modelglue sends a one-shot prompt to any configured provider. It is
// the smallest useful consumer of the library: config loading, provider
// registration, prompt formatting, and model invocation in one place.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/modelglue/modelglue/config"
	"github.com/modelglue/modelglue/llm"
	mglogger "github.com/modelglue/modelglue/logger"
)

func main() {
	var (
		configPath = flag.String("config", "~/.config/modelglue/config.yaml", "Path to config file")
		modelName  = flag.String("model", "", "Model name (provider resolved from prefix, e.g. claude-*, gpt-*, gemini-*)")
		provider   = flag.String("provider", "", "Explicit provider key (needed for prefix-less providers like ollama)")
		system     = flag.String("system", "", "System prompt")
		imagePath  = flag.String("image", "", "Path to an image file to attach")
		timeout    = flag.Duration("timeout", 120*time.Second, "Invocation timeout")
		logFile    = flag.String("logfile", "", "Path to log file. If not set, logs to stdout/stderr")
		pretty     = flag.Bool("pretty", false, "Use pretty console output (only valid when logfile is not set)")
	)
	flag.Parse()

	if *logFile != "" && *pretty {
		fmt.Fprintf(os.Stderr, "Error: --logfile and --pretty are mutually exclusive\n")
		os.Exit(1)
	}

	logger, err := mglogger.InitWithOptions(*logFile, *pretty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", *configPath).Msg("Failed to load configuration")
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	factory := llm.NewFactory()
	config.RegisterProviders(factory, cfg, logger)

	text := strings.Join(flag.Args(), " ")
	if text == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read prompt from stdin: %v\n", err)
			os.Exit(1)
		}
		text = strings.TrimSpace(string(data))
	}
	if text == "" {
		fmt.Fprintf(os.Stderr, "Usage: modelglue [flags] <prompt text>\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	opts := llm.Options{System: *system}

	var model llm.UnifiedModel
	if *provider != "" {
		model, err = factory.CreateForProvider(*provider, *modelName, opts)
	} else {
		model, err = factory.Create(*modelName, opts)
	}
	if err != nil {
		logger.Error().Err(err).Str("model", *modelName).Msg("Failed to create model")
		fmt.Fprintf(os.Stderr, "Failed to create model: %v\n", err)
		os.Exit(1)
	}

	logger.Info().
		Str("provider", model.ProviderName()).
		Str("model", model.ModelName()).
		Msg("Invoking model")

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	var response string
	if *imagePath != "" {
		image, err := llm.ImageFromFile(*imagePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read image: %v\n", err)
			os.Exit(1)
		}
		response, err = llm.ProcessWithImages(ctx, model, text, image)
		if err != nil {
			logger.Error().Err(err).Msg("Invocation failed")
			fmt.Fprintf(os.Stderr, "Invocation failed: %v\n", err)
			os.Exit(1)
		}
	} else {
		formatted, err := model.FormatPrompt([]llm.ContentItem{llm.NewText(text)})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to format prompt: %v\n", err)
			os.Exit(1)
		}
		response, err = model.Invoke(ctx, formatted)
		if err != nil {
			logger.Error().Err(err).Msg("Invocation failed")
			fmt.Fprintf(os.Stderr, "Invocation failed: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println(response)
}
