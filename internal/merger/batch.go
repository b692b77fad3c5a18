package merger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ryabkov82/csv-reconciler/internal/config"
)

// BatchMerger обходит каталоги тестов: для каждого <dirA>/<тест>/<file-a>
// ищется парный <dirB>/<тест>/<file-b>, результат пишется в
// <outputDir>/<тест>/<file-out>.
//
// Отсутствие парного файла - мягкая ошибка: предупреждение и пропуск.
// Ошибка объединения останавливает только свой тест, остальные пары
// обрабатываются; если хотя бы одна пара не объединилась, весь запуск
// завершается ошибкой.
type BatchMerger struct {
	BaseMerger
}

func NewBatchMerger() FileMerger {
	return &BatchMerger{}
}

func (bm *BatchMerger) MergeFiles(cfg *config.Config) ([]string, int64, error) {
	bm.Init(cfg)

	pattern := filepath.Join(cfg.DirA, "*", cfg.FileA)
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка поиска файлов по шаблону %s: %v", pattern, err)
	}
	if len(matches) == 0 {
		log.Warn().Str("шаблон", pattern).Msg("входные файлы не найдены")
	}

	var (
		outputFiles []string
		totalRows   int64
		failed      []string
	)

	for _, pathA := range matches {
		testName := filepath.Base(filepath.Dir(pathA))
		pathB := filepath.Join(cfg.DirB, testName, cfg.FileB)

		if _, err := os.Stat(pathB); os.IsNotExist(err) {
			log.Warn().Str("тест", testName).Str("файл", pathB).
				Msg("нет парного файла, пропускаем")
			continue
		}

		outPath := filepath.Join(cfg.OutputDir, testName, cfg.FileOut)
		rows, err := bm.mergePair(pathA, pathB, outPath)
		if err != nil {
			log.Error().Err(err).Str("тест", testName).Msg("тест не объединен")
			failed = append(failed, testName)
			continue
		}

		outputFiles = append(outputFiles, outPath)
		totalRows += rows
		log.Info().Str("тест", testName).Int64("строк", rows).Str("файл", outPath).
			Msg("объединено")
	}

	if len(failed) > 0 {
		return outputFiles, totalRows,
			fmt.Errorf("не объединены тесты: %s", strings.Join(failed, ", "))
	}
	return outputFiles, totalRows, nil
}
