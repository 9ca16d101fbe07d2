package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/yourusername/media-studio-go/internal/app"
	"github.com/yourusername/media-studio-go/internal/domain"
	"github.com/yourusername/media-studio-go/internal/infrastructure"
	"github.com/yourusername/media-studio-go/pkg/logger"
	"go.uber.org/zap"
)

var (
	configPath string
	rootCmd    = &cobra.Command{
		Use:   "media-studio",
		Short: "Media Studio CLI - AI video generation and media download",
		Long:  `A command-line interface for generating videos with Veo models and downloading the results into organized local folders.`,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
}

// loadConfigAndLogger is the shared setup for every command
func loadConfigAndLogger() (*domain.Config, *zap.Logger) {
	config, err := app.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:      config.Logging.Level,
		Format:     config.Logging.Format,
		OutputPath: config.Logging.OutputPath,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	return config, log
}

// openRepository opens the run-history database, or returns nil when
// history is disabled
func openRepository(config *domain.Config, log *zap.Logger) domain.RunRepository {
	if !config.History.Enabled {
		return nil
	}
	repo, err := infrastructure.NewSQLiteRunRepository(config.History.DatabasePath)
	if err != nil {
		log.Warn("Run history unavailable", zap.Error(err))
		return nil
	}
	return repo
}

// buildPipeline wires the download pipeline with its production collaborators
func buildPipeline(cmd *cobra.Command, config *domain.Config, log *zap.Logger) *app.Pipeline {
	store, err := infrastructure.NewGCSObjectStore(cmd.Context(), log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fetcher := infrastructure.NewHTTPFetcher(nil, config.Download.ChunkSize, log)
	return app.NewPipeline(store, fetcher, config.Storage.SignedURLTTL, log)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate videos from a text prompt",
	Run: func(cmd *cobra.Command, args []string) {
		config, log := loadConfigAndLogger()
		defer log.Sync()

		prompt, _ := cmd.Flags().GetString("prompt")
		if prompt == "" {
			fmt.Fprintln(os.Stderr, "Error: prompt is required")
			os.Exit(1)
		}

		modelID, _ := cmd.Flags().GetString("model")
		if modelID == "" {
			modelID = config.Generation.DefaultModel
		}

		videos, _ := cmd.Flags().GetInt("videos")
		duration, _ := cmd.Flags().GetInt("duration")
		aspectRatio, _ := cmd.Flags().GetString("aspect-ratio")
		resolution, _ := cmd.Flags().GetString("resolution")
		outputURI, _ := cmd.Flags().GetString("output")
		autoDownload, _ := cmd.Flags().GetBool("download")
		downloadDir, _ := cmd.Flags().GetString("download-folder")

		if duration == 0 {
			duration = config.Generation.DurationSeconds
		}
		if aspectRatio == "" {
			aspectRatio = config.Generation.AspectRatio
		}
		if resolution == "" {
			resolution = config.Generation.Resolution
		}
		if outputURI == "" {
			outputURI = config.Storage.OutputURI()
			if outputURI == "" {
				fmt.Fprintln(os.Stderr, "Error: no output URI; set storage.bucket or MEDIASTUDIO_STORAGE_BUCKET")
				os.Exit(1)
			}
		}
		if downloadDir != "" {
			config.Download.BaseDir = downloadDir
		}

		generator, err := infrastructure.NewVeoGenerator(cmd.Context(), log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		repo := openRepository(config, log)
		svc := app.NewGenerationService(generator, repo, &config.Generation, log)
		notifier := infrastructure.NewNotificationService(&config.Notification, log)

		fmt.Printf("Generating with %s...\n", modelID)
		result, err := svc.Generate(cmd.Context(), app.GenerateRequest{
			Prompt:    prompt,
			ModelID:   modelID,
			OutputURI: outputURI,
			Options: domain.GenerationOptions{
				NumberOfVideos:  videos,
				DurationSeconds: duration,
				AspectRatio:     aspectRatio,
				Resolution:      resolution,
				EnhancePrompt:   config.Generation.EnhancePrompt,
			},
		})
		if err != nil {
			notifier.NotifyGenerationFailed(modelID, err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		for _, c := range result.Corrections {
			fmt.Printf("Note: %s=%s not supported by %s, used %s\n", c.Option, c.Requested, modelID, c.Applied)
		}
		fmt.Printf("Generated %d video(s)\n", len(result.MediaURIs))
		for _, uri := range result.MediaURIs {
			fmt.Printf("  %s\n", uri)
		}

		if !autoDownload || len(result.MediaURIs) == 0 {
			return
		}

		pipeline := buildPipeline(cmd, config, log)
		outcomes, err := pipeline.DownloadBatch(cmd.Context(), result.MediaURIs, config.Download)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		summary := app.Summarize(outcomes, len(result.MediaURIs), config.Download.OrganizeByType)
		fmt.Print(summary.Render())

		svc.RecordDownloads(result.Run, summary.Succeeded)
		notifier.NotifyBatchFinished(summary.Succeeded, summary.Attempted)
	},
}

var downloadCmd = &cobra.Command{
	Use:   "download [reference...]",
	Short: "Download media references into organized local folders",
	Long: `Download one or more media references (gs:// URIs or direct URLs) into
per-category folders under the output directory.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config, log := loadConfigAndLogger()
		defer log.Sync()

		if dir, _ := cmd.Flags().GetString("output"); dir != "" {
			config.Download.BaseDir = dir
		}
		if flat, _ := cmd.Flags().GetBool("flat"); flat {
			config.Download.OrganizeByType = false
		}
		if noCleanup, _ := cmd.Flags().GetBool("no-cleanup"); noCleanup {
			config.Download.CleanupRemote = false
		}

		refs := make([]domain.MediaReference, len(args))
		for i, a := range args {
			refs[i] = domain.MediaReference(a)
		}

		pipeline := buildPipeline(cmd, config, log)
		outcomes, err := pipeline.DownloadBatch(cmd.Context(), refs, config.Download)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		summary := app.Summarize(outcomes, len(refs), config.Download.OrganizeByType)
		fmt.Print(summary.Render())

		if summary.Succeeded < summary.Attempted {
			os.Exit(1)
		}
	},
}

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List available generation models",
	Run: func(cmd *cobra.Command, args []string) {
		models := domain.VideoModels()
		ids := make([]string, 0, len(models))
		for id := range models {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tMAX VIDEOS\tDURATION\tRESOLUTIONS")
		for _, id := range ids {
			m := models[id]
			caps := m.Capabilities
			duration := fmt.Sprintf("%d-%ds", caps.Duration.Min, caps.Duration.Max)
			if caps.Duration.Min == caps.Duration.Max {
				duration = fmt.Sprintf("%ds", caps.Duration.Default)
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
				m.ID, m.DisplayName, caps.MaxVideos, duration, strings.Join(caps.Resolutions, ", "))
		}
		w.Flush()
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent generation runs",
	Run: func(cmd *cobra.Command, args []string) {
		config, log := loadConfigAndLogger()
		defer log.Sync()

		repo := openRepository(config, log)
		if repo == nil {
			fmt.Fprintln(os.Stderr, "Error: run history is disabled")
			os.Exit(1)
		}

		limit, _ := cmd.Flags().GetInt("limit")
		runs, err := repo.FindRecent(limit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tPROMPT\tMODEL\tSTATUS\tVIDEOS\tCREATED")
		for _, r := range runs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d/%d\t%s\n",
				truncate(r.ID, 8),
				truncate(r.Prompt, 40),
				r.ModelID,
				r.Status,
				r.DownloadedCount,
				r.RequestedVideos,
				r.CreatedAt.Format("2006-01-02 15:04"))
		}
		w.Flush()
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show generation run statistics",
	Run: func(cmd *cobra.Command, args []string) {
		config, log := loadConfigAndLogger()
		defer log.Sync()

		repo := openRepository(config, log)
		if repo == nil {
			fmt.Fprintln(os.Stderr, "Error: run history is disabled")
			os.Exit(1)
		}

		stats, err := repo.GetStats()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("Run Statistics:")
		fmt.Printf("  Total:      %d\n", stats.Total)
		fmt.Printf("  Queued:     %d\n", stats.Queued)
		fmt.Printf("  Processing: %d\n", stats.Processing)
		fmt.Printf("  Completed:  %d\n", stats.Completed)
		fmt.Printf("  Failed:     %d\n", stats.Failed)
	},
}

func init() {
	generateCmd.Flags().StringP("prompt", "p", "", "Video generation prompt")
	generateCmd.Flags().StringP("model", "m", "", "Generation model id (see 'models')")
	generateCmd.Flags().IntP("videos", "n", 1, "Number of videos to generate")
	generateCmd.Flags().IntP("duration", "d", 0, "Video duration in seconds")
	generateCmd.Flags().String("aspect-ratio", "", "Video aspect ratio (e.g. 16:9)")
	generateCmd.Flags().StringP("resolution", "r", "", "Video resolution (720p or 1080p)")
	generateCmd.Flags().StringP("output", "o", "", "Storage URI for generated videos (gs://bucket/path)")
	generateCmd.Flags().Bool("download", true, "Download generated media to local folders")
	generateCmd.Flags().String("download-folder", "", "Local folder for downloaded media")

	downloadCmd.Flags().StringP("output", "o", "", "Output directory")
	downloadCmd.Flags().Bool("flat", false, "Skip per-category subfolders")
	downloadCmd.Flags().Bool("no-cleanup", false, "Keep remote copies after download")

	historyCmd.Flags().IntP("limit", "l", 20, "Maximum number of runs to show")
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
