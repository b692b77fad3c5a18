package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ryabkov82/csv-reconciler/internal/precision"
)

type Config struct {
	Batch        bool
	MinSigFigs   int  // минимальное количество значащих цифр в объединенном значении
	KeepFirstRow bool // первая строка данных копируется из первого файла без сверки

	// Одиночный режим
	InputA     string
	InputB     string
	OutputPath string

	// Пакетный режим
	DirA      string
	DirB      string
	OutputDir string
	FileA     string // имя файла первой платформы внутри каталога теста
	FileB     string // имя файла второй платформы
	FileOut   string // имя результирующего файла
}

func ParseFlags() (*Config, error) {
	return parse(os.Args[1:], os.Stderr)
}

func parse(args []string, errOut io.Writer) (*Config, error) {

	cfg := &Config{}

	fs := flag.NewFlagSet("csv-reconciler", flag.ContinueOnError)
	fs.SetOutput(errOut)

	fs.BoolVar(&cfg.Batch, "batch", false, "пакетный режим: обход каталогов тестов")
	fs.IntVar(&cfg.MinSigFigs, "min-sig-figs", precision.DefaultMinSigFigs, "минимальное количество значащих цифр")
	fs.BoolVar(&cfg.KeepFirstRow, "keep-first-row", true, "копировать первую строку данных без сверки")
	fs.StringVar(&cfg.FileA, "file-a", "linux.csv", "имя файла первой платформы (пакетный режим)")
	fs.StringVar(&cfg.FileB, "file-b", "macos.csv", "имя файла второй платформы (пакетный режим)")
	fs.StringVar(&cfg.FileOut, "file-out", "expected.csv", "имя результирующего файла (пакетный режим)")

	fs.Usage = func() {
		fmt.Fprintf(errOut, "Использование:\n")
		fmt.Fprintf(errOut, "  %s [флаги] <csv_a> <csv_b> <output>\n", fs.Name())
		fmt.Fprintf(errOut, "  %s -batch [флаги] <dir_a> <dir_b> <output_dir>\n", fs.Name())
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.MinSigFigs < 1 {
		return nil, fmt.Errorf("значение -min-sig-figs должно быть положительным, получено %d", cfg.MinSigFigs)
	}

	rest := fs.Args()
	if len(rest) != 3 {
		fs.Usage()
		return nil, fmt.Errorf("ожидается 3 аргумента, получено %d", len(rest))
	}

	// Нормализация путей
	if cfg.Batch {
		cfg.DirA = filepath.Clean(rest[0])
		cfg.DirB = filepath.Clean(rest[1])
		cfg.OutputDir = filepath.Clean(rest[2])
	} else {
		cfg.InputA = filepath.Clean(rest[0])
		cfg.InputB = filepath.Clean(rest[1])
		cfg.OutputPath = filepath.Clean(rest[2])
	}

	return cfg, nil
}
