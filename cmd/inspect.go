package cmd

import (
	"fmt"

	"catalog-pipeline/core/config"
	"catalog-pipeline/core/logger"
	"catalog-pipeline/core/storage"
	"catalog-pipeline/feature/catalog"
	"catalog-pipeline/feature/catalog/bscribe"

	"github.com/spf13/cobra"
)

// inspectCmd loads a single catalogue document and prints what the pipeline
// would extract from it, without touching any database.
var inspectCmd = &cobra.Command{
	Use:   "inspect [document]",
	Short: "Parse one catalogue document and print its assembled contents",
	Long:  `Fetches a single catalogue document from the configured source, runs the transformation pipeline over it, and prints the resulting units and detachments.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	RootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	document := args[0]

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logg.Sync() }()

	source, err := storage.NewSource(cfg.Storage)
	if err != nil {
		return err
	}
	if err := source.Check(ctx); err != nil {
		return fmt.Errorf("document source unavailable: %w", err)
	}

	data, err := source.Fetch(ctx, document)
	if err != nil {
		return err
	}

	cat, err := bscribe.Parse(data)
	if err != nil {
		return err
	}

	idx := bscribe.BuildIndex(cat)
	bundle := catalog.BuildDocument(cat, idx)

	fmt.Println("\n--- Catalogue Inspection ---")
	fmt.Printf("Document:       %s\n", document)
	fmt.Printf("Catalogue:      %s (revision %s)\n", cat.Name, cat.Revision)
	fmt.Printf("Faction label:  %s\n", bundle.Faction)
	fmt.Printf("Library:        %v\n", cat.Library)
	fmt.Println("----------------------------")

	fmt.Printf("Units (%d):\n", len(bundle.Units))
	for _, u := range bundle.Units {
		base := u.Tiers[0]
		fmt.Printf("  %-40s %-20s %3d pts @ %d models  (weapons: %d, abilities: %d)\n",
			u.Name, u.Role, base.Points, base.ModelCount, len(u.Weapons), len(u.Abilities))
	}

	fmt.Printf("Detachments (%d):\n", len(bundle.Detachments))
	for _, d := range bundle.Detachments {
		fmt.Printf("  %-40s enhancements: %d\n", d.Name, len(d.Enhancements))
	}
	fmt.Println("----------------------------")

	return nil
}
