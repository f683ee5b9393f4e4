package importer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ImportDir walks dir for .csv exports and imports each unseen file,
// recording progress in the state database. Files already imported with
// the same size and hash are skipped.
func (imp *Importer) ImportDir(ctx context.Context, dir string, state *StateDB, userID int) (*Stats, error) {
	total := &Stats{}

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".csv") {
			return nil
		}

		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		hash, err := HashFile(path)
		if err != nil {
			return fmt.Errorf("hashing %s: %w", relPath, err)
		}

		done, err := state.IsImported(relPath, info.Size(), hash)
		if err != nil {
			return fmt.Errorf("checking state for %s: %w", relPath, err)
		}
		if done {
			imp.log.Debug("skipping file (already imported)", "file", relPath)
			return nil
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		stats, err := imp.ImportCSV(ctx, f, userID)
		f.Close()
		if err != nil {
			return fmt.Errorf("importing %s: %w", relPath, err)
		}

		total.SessionsImported += stats.SessionsImported
		total.SessionsSkipped += stats.SessionsSkipped
		total.ExercisesImported += stats.ExercisesImported
		total.SetsImported += stats.SetsImported

		if !imp.dryRun {
			if err := state.MarkImported(relPath, info.Size(), hash); err != nil {
				return fmt.Errorf("recording state for %s: %w", relPath, err)
			}
		}
		imp.log.Info("imported file", "file", relPath,
			"sessions", stats.SessionsImported, "skipped", stats.SessionsSkipped)
		return nil
	})
	if err != nil {
		return total, err
	}
	return total, nil
}
