package cmd

import (
	"fmt"

	"catalog-pipeline/core/config"
	"catalog-pipeline/core/database"
	"catalog-pipeline/core/logger"
	"catalog-pipeline/core/storage"
	"catalog-pipeline/feature/catalog"
	"catalog-pipeline/feature/catalog/emit"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the compile command
	manifestPath string
	dryRunFlag   bool
)

// compileCmd runs the whole pipeline: manifest -> documents -> bundles -> DB.
var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile catalogue documents and load them into the destination database",
	Long: `Compile every faction listed in the manifest.

Each faction's catalogue documents are parsed, indexed and assembled into a
complete bundle of units and detachments, merged across documents, then
written to the destination database as one transactional batch.

Examples:
  # Compile everything the manifest names
  catalog-pipeline compile

  # Build bundles and report counts without writing anywhere
  catalog-pipeline compile --dry-run

  # Use a specific manifest
  catalog-pipeline compile --manifest ./factions.yaml`,
	RunE: runCompile,
}

func init() {
	compileCmd.Flags().StringVar(&manifestPath, "manifest", "", "Path to the faction manifest (overrides config)")
	compileCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Build bundles and report counts without writing to the database")

	RootCmd.AddCommand(compileCmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logg.Sync() }()

	path := manifestPath
	if path == "" {
		path = cfg.Pipeline.Manifest
	}
	manifest, err := catalog.LoadManifest(path)
	if err != nil {
		return err
	}

	source, err := storage.NewSource(cfg.Storage)
	if err != nil {
		return err
	}
	if err := source.Check(ctx); err != nil {
		return fmt.Errorf("document source unavailable: %w", err)
	}

	svc := catalog.NewService(source, logg)

	logg.Info("Compile started",
		zap.Int("factions", len(manifest.Factions)),
		zap.Bool("dry_run", dryRunFlag))

	factions := svc.CompileAll(ctx, manifest)
	if len(factions) == 0 {
		logg.Warn("No factions compiled, nothing to write")
		return nil
	}

	// Per-faction report
	fmt.Println("\n--- Compile Report ---")
	totalUnits, totalDets := 0, 0
	for _, f := range factions {
		fmt.Printf("%-40s units: %-4d detachments: %d\n", f.Name, len(f.Units), len(f.Detachments))
		totalUnits += len(f.Units)
		totalDets += len(f.Detachments)
	}
	fmt.Println("----------------------")
	fmt.Printf("%-40s units: %-4d detachments: %d\n", fmt.Sprintf("TOTAL (%d factions)", len(factions)), totalUnits, totalDets)

	if dryRunFlag {
		logg.Info("Dry run, skipping destination write")
		return nil
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return err
	}

	emitter := emit.New(db)
	if err := emitter.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate destination schema: %w", err)
	}
	if err := emitter.Apply(ctx, factions); err != nil {
		return fmt.Errorf("failed to write batch: %w", err)
	}

	logg.Info("Batch written", zap.Int("factions", len(factions)), zap.Int("units", totalUnits))
	return nil
}
