package merger

import (
	"errors"
	"fmt"

	"github.com/ryabkov82/csv-reconciler/internal/config"
	"github.com/ryabkov82/csv-reconciler/internal/precision"
	"github.com/ryabkov82/csv-reconciler/internal/table"
)

// Ошибки структурной валидации таблиц
var (
	ErrShapeMismatch    = errors.New("количество строк в таблицах не совпадает")
	ErrEmptyInput       = errors.New("таблицы пустые")
	ErrHeaderMismatch   = errors.New("заголовки таблиц не совпадают")
	ErrRowShapeMismatch = errors.New("количество колонок в строке не совпадает")
)

type FileMerger interface {
	MergeFiles(cfg *config.Config) ([]string, int64, error)
}

type BaseMerger struct {
	MinSigFigs   int
	KeepFirstRow bool
}

// Init инициализирует политику объединения из конфигурации
func (bm *BaseMerger) Init(cfg *config.Config) {
	bm.MinSigFigs = cfg.MinSigFigs
	bm.KeepFirstRow = cfg.KeepFirstRow
}

// MergeTables объединяет две таблицы одинаковой формы: заголовок сохраняется,
// каждая ячейка данных сводится к самой длинной точности, на которой сходятся
// оба значения. Первая строка данных при включенном KeepFirstRow копируется
// из первой таблицы без сверки: в ней обычно фиксированные начальные значения,
// одинаковые по построению.
//
// Валидация формы выполняется до объединения; любая ошибка в ячейке
// прерывает операцию целиком с указанием строки и имени колонки.
func (bm *BaseMerger) MergeTables(a, b table.Table) (table.Table, error) {

	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d и %d", ErrShapeMismatch, len(a), len(b))
	}
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}

	header := a[0]
	if !rowsEqual(header, b[0]) {
		return nil, fmt.Errorf("%w: %v и %v", ErrHeaderMismatch, header, b[0])
	}

	merged := make(table.Table, 0, len(a))
	merged = append(merged, header)

	for i := 1; i < len(a); i++ {
		rowA, rowB := a[i], b[i]
		// Индекс строки данных, без учета заголовка
		rowIdx := i - 1

		if len(rowA) != len(rowB) {
			return nil, fmt.Errorf("%w: строка %d: %d и %d",
				ErrRowShapeMismatch, rowIdx, len(rowA), len(rowB))
		}
		if len(rowA) != len(header) {
			return nil, fmt.Errorf("%w: строка %d: %d колонок при %d в заголовке",
				ErrRowShapeMismatch, rowIdx, len(rowA), len(header))
		}

		if bm.KeepFirstRow && rowIdx == 0 {
			merged = append(merged, rowA)
			continue
		}

		mergedRow := make([]string, len(rowA))
		for col := range rowA {
			val, err := precision.FindCommonPrecision(rowA[col], rowB[col], bm.MinSigFigs)
			if err != nil {
				return nil, fmt.Errorf("строка %d, колонка %q: %w", rowIdx, header[col], err)
			}
			mergedRow[col] = val
		}
		merged = append(merged, mergedRow)
	}

	return merged, nil
}

// mergePair читает пару файлов, объединяет и записывает результат.
// Возвращает количество объединенных строк данных.
func (bm *BaseMerger) mergePair(pathA, pathB, outPath string) (int64, error) {
	tableA, err := table.ReadFile(pathA)
	if err != nil {
		return 0, err
	}
	tableB, err := table.ReadFile(pathB)
	if err != nil {
		return 0, err
	}

	merged, err := bm.MergeTables(tableA, tableB)
	if err != nil {
		return 0, fmt.Errorf("ошибка объединения %s и %s: %w", pathA, pathB, err)
	}

	if err := table.WriteFile(outPath, merged); err != nil {
		return 0, err
	}
	return int64(len(merged) - 1), nil
}

func rowsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
