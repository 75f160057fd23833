package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type ExportS struct {
	repo VocabRI
	log  *zap.Logger
}

func NewExportService(repo VocabRI, log *zap.Logger) *ExportS {
	return &ExportS{repo: repo, log: log}
}

// exportTable flattens a set into a header of sorted language names and
// one row per group, blank where a group lacks that language.
func (s *ExportS) exportTable(ctx context.Context, setID int64) ([]string, [][]string, error) {
	groupIDs, err := s.repo.SetGroupIDs(ctx, setID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load set groups: %w", err)
	}
	if len(groupIDs) == 0 {
		return nil, nil, ErrEmptySet
	}

	groups := make([]map[string]string, 0, len(groupIDs))
	langSet := make(map[string]struct{})
	for _, groupID := range groupIDs {
		words, err := s.repo.GroupWords(ctx, groupID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load group %d: %w", groupID, err)
		}
		if len(words) == 0 {
			continue
		}
		groups = append(groups, words)
		for lang := range words {
			langSet[lang] = struct{}{}
		}
	}
	if len(groups) == 0 {
		return nil, nil, ErrEmptySet
	}

	header := make([]string, 0, len(langSet))
	for lang := range langSet {
		header = append(header, lang)
	}
	sort.Strings(header)

	rows := make([][]string, 0, len(groups))
	for _, words := range groups {
		row := make([]string, len(header))
		for i, lang := range header {
			row[i] = words[lang]
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

func (s *ExportS) ExportCSV(ctx context.Context, setID int64, w io.Writer) error {
	header, rows, err := s.exportTable(ctx, setID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}

	s.log.Info("exported set to csv", zap.Int64("set_id", setID), zap.Int("rows", len(rows)))
	return nil
}

func (s *ExportS) ExportXLSX(ctx context.Context, setID int64, w io.Writer) error {
	header, rows, err := s.exportTable(ctx, setID)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	writeRow := func(rowIdx int, values []string) error {
		for colIdx, value := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
		return nil
	}

	if err := writeRow(1, header); err != nil {
		return fmt.Errorf("failed to write xlsx header: %w", err)
	}
	for i, row := range rows {
		if err := writeRow(i+2, row); err != nil {
			return fmt.Errorf("failed to write xlsx row: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write xlsx file: %w", err)
	}

	s.log.Info("exported set to xlsx", zap.Int64("set_id", setID), zap.Int("rows", len(rows)))
	return nil
}
