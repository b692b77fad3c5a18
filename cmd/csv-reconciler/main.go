package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ryabkov82/csv-reconciler/internal/config"
	"github.com/ryabkov82/csv-reconciler/internal/merger"
)

type Output struct {
	Success     bool     `json:"success"`
	OutputFiles []string `json:"output_files,omitempty"`
	Error       string   `json:"error,omitempty"`
	Duration    string   `json:"duration"`
	RowCount    int64    `json:"row_count,omitempty"`
}

func main() {

	start := time.Now()

	// Диагностика пишется в stderr, stdout остается за итоговым JSON
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}).With().Timestamp().Logger()

	cfg, err := config.ParseFlags()
	if err != nil {
		emitJSON(Output{
			Success:  false,
			Error:    fmt.Sprintf("Ошибка конфигурации: %v", err),
			Duration: time.Since(start).String(),
		})
		os.Exit(2)
	}

	var m merger.FileMerger
	if cfg.Batch {
		m = merger.NewBatchMerger()
	} else {
		m = merger.NewPairMerger()
	}

	outputFiles, rowCount, err := m.MergeFiles(cfg)
	if err != nil {
		emitJSON(Output{
			Success:     false,
			OutputFiles: outputFiles,
			RowCount:    rowCount,
			Error:       fmt.Sprintf("Ошибка объединения: %v", err),
			Duration:    time.Since(start).String(),
		})
		os.Exit(1)
	}

	emitJSON(Output{
		Success:     true,
		OutputFiles: outputFiles,
		RowCount:    rowCount,
		Duration:    time.Since(start).String(),
	})

}

func emitJSON(out Output) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ") // для красивого вывода (опционально)
	if err := enc.Encode(out); err != nil {
		log.Fatal().Err(err).Msg("Ошибка вывода JSON")
	}
}
