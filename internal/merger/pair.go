package merger

import (
	"github.com/ryabkov82/csv-reconciler/internal/config"
)

// PairMerger объединяет ровно одну пару файлов
type PairMerger struct {
	BaseMerger
}

func NewPairMerger() FileMerger {
	return &PairMerger{}
}

func (pm *PairMerger) MergeFiles(cfg *config.Config) ([]string, int64, error) {
	pm.Init(cfg)

	rows, err := pm.mergePair(cfg.InputA, cfg.InputB, cfg.OutputPath)
	if err != nil {
		return nil, 0, err
	}
	return []string{cfg.OutputPath}, rows, nil
}
