package main

import (
	"context"
	"encoding/base64"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mediavault/config"
	"mediavault/database"
	"mediavault/enums"
	"mediavault/logger"
	"mediavault/mediacrypt"
	"mediavault/models"
	"mediavault/networking"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	classFlag := flag.String("class", "", "media class: image, audio, video or document")
	urlFlag := flag.String("url", "", "ciphertext URL")
	inFlag := flag.String("in", "", "path to a local ciphertext file (alternative to -url)")
	keyFlag := flag.String("key", "", "base64 media key")
	idFlag := flag.String("id", "", "message id (enables caching)")
	outFlag := flag.String("out", "", "output path (default: downloads dir, derived name)")
	flag.Parse()

	logger.Init()
	defer logger.Sync()

	// load environment variables and configurations
	config.Load()
	logger.SetLevel(config.Env.LogLevel)

	class := enums.MediaClass(*classFlag)
	if !class.IsValid() {
		zap.S().Fatalf("invalid media class %q", *classFlag)
	}
	if *keyFlag == "" {
		zap.S().Fatal("media key is required")
	}
	mediaKey, err := base64.StdEncoding.DecodeString(*keyFlag)
	if err != nil {
		zap.S().Fatalf("media key is not valid base64: %v", err)
	}

	req := &models.MediaRequest{
		SourceURL: *urlFlag,
		MediaKey:  mediaKey,
		MessageID: *idFlag,
	}
	if *inFlag != "" {
		data, err := os.ReadFile(*inFlag)
		if err != nil {
			zap.S().Fatalf("failed to read ciphertext file: %v", err)
		}
		req.InlineCiphertext = base64.StdEncoding.EncodeToString(data)
	}

	var store mediacrypt.Store
	if config.Env.Caching {
		db, err := database.New(config.Env)
		if err != nil {
			zap.S().Fatalf("failed to set up database: %v", err)
		}
		if pruned, err := db.PruneExpired(context.Background()); err != nil {
			zap.S().Warnf("failed to prune expired cache entries: %v", err)
		} else if pruned > 0 {
			zap.S().Debugf("pruned %d expired cache entries", pruned)
		}
		store = db
	}

	fetcher := mediacrypt.NewHTTPFetcher(
		networking.GetDefaultHTTPClient(),
		config.Env.MaxFileSize,
	)
	resolver := mediacrypt.NewResolver(store, fetcher)

	media, err := resolver.Resolve(context.Background(), class, req)
	if err != nil {
		zap.S().Fatalf("failed to resolve media: %v", err)
	}

	outputPath := *outFlag
	if outputPath == "" {
		if err := os.MkdirAll(config.Env.DownloadsDirectory, 0755); err != nil {
			zap.S().Fatalf("failed to create downloads directory: %v", err)
		}
		outputPath = filepath.Join(
			config.Env.DownloadsDirectory,
			uuid.NewString()+"."+formatExtension(media.Format),
		)
	}
	if err := os.WriteFile(outputPath, media.Payload, 0644); err != nil {
		zap.S().Fatalf("failed to write output file: %v", err)
	}

	fmt.Printf("%s (%s, %d bytes)\n", outputPath, media.Format, len(media.Payload))
}

func formatExtension(format string) string {
	// mime-style document formats map to a generic extension
	if strings.Contains(format, "/") {
		switch format {
		case "application/pdf":
			return "pdf"
		case "application/zip":
			return "zip"
		case "text/plain":
			return "txt"
		}
		return "bin"
	}
	return format
}
