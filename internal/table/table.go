package table

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Table - таблица как последовательность строк; первая строка считается заголовком.
// Выравнивание количества колонок не проверяется при чтении: структурная
// валидация выполняется при объединении и дает осмысленные ошибки.
type Table [][]string

// ReadFile читает таблицу из файла, формат определяется по расширению
// (.csv или .xlsx)
func ReadFile(path string) (Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return readXLSX(path)
	}
	return readCSV(path)
}

// WriteFile записывает таблицу в файл, создавая недостающие каталоги.
// Формат определяется по расширению, как при чтении.
func WriteFile(path string, t Table) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ошибка создания каталога для %s: %v", path, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return writeXLSX(path, t)
	}
	return writeCSV(path, t)
}

func readCSV(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла %s: %v", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Неровные строки пропускаем через парсер: их отловит валидация формы
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения CSV %s: %v", path, err)
	}
	return rows, nil
}

func writeCSV(path string, t Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ошибка создания файла %s: %v", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(t); err != nil {
		return fmt.Errorf("ошибка записи CSV %s: %v", path, err)
	}
	return nil
}
