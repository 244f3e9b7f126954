package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sefazor/textback-landing/internal/config"
	"github.com/sefazor/textback-landing/pkg/logger"
	"github.com/sefazor/textback-landing/pkg/storage"
)

var errR2Disabled = errors.New("R2 is not configured; set R2_ACCOUNT_ID, R2_ACCESS_KEY_ID, R2_SECRET_ACCESS_KEY and R2_BUCKET")

func newSyncAssetsCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "sync-assets",
		Short: "Upload the local asset directory to the R2 bucket",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if !cfg.R2.Enabled() {
				return errR2Disabled
			}
			if dir == "" {
				dir = cfg.AssetsDir
			}

			log, err := logger.New(cfg.IsDevelopment())
			if err != nil {
				return err
			}
			defer logger.Sync(log)

			store, err := storage.NewCloudflareStorage(cmd.Context(), cfg.R2, log)
			if err != nil {
				return err
			}

			n, err := syncAssets(cmd.Context(), os.DirFS(dir), store, log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "uploaded %d assets from %s\n", n, dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "asset directory (default: ASSETS_DIR)")
	return cmd
}

// syncAssets uploads every regular file of src to store under its relative
// path and returns how many were uploaded.
func syncAssets(ctx context.Context, src fs.FS, store storage.AssetStore, log *zap.Logger) (int, error) {
	uploaded := 0
	err := fs.WalkDir(src, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Base(p)[0] == '.' {
			return nil
		}

		f, err := src.Open(p)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", p, err)
		}
		defer f.Close()

		if err := store.Upload(ctx, p, f, mime.TypeByExtension(filepath.Ext(p))); err != nil {
			return err
		}
		log.Debug("asset synced", zap.String("key", p))
		uploaded++
		return nil
	})
	return uploaded, err
}
