package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/example/mely/internal/database"
	"github.com/example/mely/internal/models"
	"github.com/example/mely/internal/repository"
	"github.com/example/mely/internal/services"
)

// catalogFile is the on-disk layout read by the seed command.
type catalogFile struct {
	Products []services.ProductInput `yaml:"products"`
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load catalog products from a YAML file",
	Long: `Create or update catalog products listed in a YAML file.

Products are matched by name: an existing product with the same name is
updated in place, anything else is inserted.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringP("file", "f", "deploy/catalog.yaml", "path to the catalog file")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	inputs, err := readCatalog(f)
	if err != nil {
		return err
	}

	_, log, db, err := bootstrap(database.Options{Migrate: true})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	catalog := services.NewCatalogService(repository.NewProductStore(db), log)
	created, updated, err := seedCatalog(cmd.Context(), catalog, inputs)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "seeded catalog: %d created, %d updated\n", created, updated)
	return nil
}

func readCatalog(r io.Reader) ([]services.ProductInput, error) {
	var file catalogFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(file.Products) == 0 {
		return nil, fmt.Errorf("catalog has no products")
	}
	return file.Products, nil
}

type productUpserter interface {
	UpsertProduct(ctx context.Context, in services.ProductInput) (*models.Product, bool, error)
}

func seedCatalog(ctx context.Context, catalog productUpserter, inputs []services.ProductInput) (created, updated int, err error) {
	for _, in := range inputs {
		_, isNew, err := catalog.UpsertProduct(ctx, in)
		if err != nil {
			return created, updated, err
		}
		if isNew {
			created++
		} else {
			updated++
		}
	}
	return created, updated, nil
}
