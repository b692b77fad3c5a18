package table

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

func readXLSX(path string) (Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла %s: %v", path, err)
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, fmt.Errorf("в файле %s нет листов", path)
	}

	rows, err := f.Rows(sheetList[0])
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения строк из %s: %v", path, err)
	}
	defer rows.Close()

	t := Table{}
	for rows.Next() {
		cols, err := rows.Columns()
		if err != nil {
			return nil, fmt.Errorf("ошибка чтения строки из %s: %v", path, err)
		}
		t = append(t, cols)
	}
	return t, nil
}

func writeXLSX(path string, t Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return fmt.Errorf("ошибка создания StreamWriter: %v", err)
	}

	// Все значения пишутся строками: округленные числа должны попасть
	// в файл ровно в том виде, в каком их согласовали обе платформы
	for i, row := range t {
		rowData := make([]interface{}, len(row))
		for j, val := range row {
			rowData[j] = val
		}
		cell := fmt.Sprintf("A%d", i+1)
		if err := sw.SetRow(cell, rowData); err != nil {
			return fmt.Errorf("ошибка записи строки: %v", err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("ошибка финального flush: %v", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("ошибка сохранения файла: %v", err)
	}
	return nil
}
