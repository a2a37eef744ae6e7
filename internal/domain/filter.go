package domain

import (
	"context"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/kalestew/mutatex/internal/adapter"
	m "github.com/kalestew/mutatex/internal/model"
)

// energyCheckParallelism bounds concurrent energy-file stat calls.
const energyCheckParallelism = 16

// PartitionByEnergyFile splits positions into those that have an energy file
// in dataDir and those that do not. An energy file is named exactly like its
// position identifier. Both slices preserve the input order.
func PartitionByEnergyFile(
	ctx context.Context,
	fs adapter.PositionFSAdapter,
	dataDir m.Path,
	positions []m.Position,
) (available, missing []m.Position, err error) {
	present := make([]bool, len(positions))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(energyCheckParallelism)

	for i, pos := range positions {
		i, pos := i, pos
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			info, err := fs.FileInfo(m.Path(filepath.Join(string(dataDir), string(pos))))
			present[i] = err == nil && !info.IsDir()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, nil, err
	}

	for i, pos := range positions {
		if present[i] {
			available = append(available, pos)
		} else {
			missing = append(missing, pos)
		}
	}

	return available, missing, nil
}
