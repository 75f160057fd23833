package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

type ImportS struct {
	repo         VocabRI
	translator   TranslatorI
	mainLanguage string
	log          *zap.Logger
}

func NewImportService(repo VocabRI, translator TranslatorI, mainLanguage string, log *zap.Logger) *ImportS {
	return &ImportS{
		repo:         repo,
		translator:   translator,
		mainLanguage: mainLanguage,
		log:          log,
	}
}

type ImportParams struct {
	// SetName names a new set; ignored when SetID targets an existing one.
	SetName     string
	Description string
	SetID       int64
	Text        string
	// LanguagesOrder assigns a language to each column. When empty the
	// columns become Unknown1, the configured main language, Unknown3…
	LanguagesOrder []string
	Tags           []string
	// AutoTranslate fills the main-language column from the first column
	// via the translation client when the row leaves it blank.
	AutoTranslate bool
}

type ImportResult struct {
	SetID   int64
	Groups  int
	Skipped int
}

// ImportText parses delimiter-separated vocabulary text into a set.
// Markdown tables, TSV, CSV and semicolon-separated input are accepted;
// the delimiter is detected from the first data line. Rows whose column
// count does not match the header order are skipped, not fatal.
func (s *ImportS) ImportText(ctx context.Context, p ImportParams) (ImportResult, error) {
	rows := parseLines(p.Text)
	if len(rows) == 0 {
		return ImportResult{}, fmt.Errorf("no vocabulary rows found in input")
	}

	order := resolveOrder(p.LanguagesOrder, len(rows[0]), s.mainLanguage)
	if isHeaderRow(rows[0], order) {
		rows = rows[1:]
	}

	setID := p.SetID
	if setID == 0 {
		id, err := s.repo.CreateSet(ctx, p.SetName, p.Description)
		if err != nil {
			return ImportResult{}, fmt.Errorf("failed to create set: %w", err)
		}
		setID = id
		for _, tag := range p.Tags {
			if err := s.repo.TagSet(ctx, setID, titleCase(strings.TrimSpace(tag))); err != nil {
				return ImportResult{}, fmt.Errorf("failed to tag set: %w", err)
			}
		}
	}

	var codes map[string]string
	if p.AutoTranslate {
		c, err := s.languageCodes(ctx)
		if err != nil {
			return ImportResult{}, err
		}
		codes = c
	}

	res := ImportResult{SetID: setID}
	for _, row := range rows {
		if len(row) != len(order) {
			res.Skipped++
			s.log.Warn("skipping row with mismatched column count",
				zap.Int("want", len(order)),
				zap.Int("got", len(row)),
			)
			continue
		}

		words := make(map[string]string, len(order))
		for i, lang := range order {
			words[lang] = strings.TrimSpace(row[i])
		}

		if p.AutoTranslate && words[s.mainLanguage] == "" {
			s.fillTranslation(ctx, words, order, codes)
		}

		groupID, err := s.repo.AddGroup(ctx)
		if err != nil {
			return res, fmt.Errorf("failed to create group: %w", err)
		}
		for lang, word := range words {
			if word == "" {
				continue
			}
			if err := s.repo.AddWord(ctx, groupID, lang, word); err != nil {
				return res, fmt.Errorf("failed to add word: %w", err)
			}
		}
		if err := s.repo.AddGroupToSet(ctx, setID, groupID); err != nil {
			return res, fmt.Errorf("failed to attach group to set: %w", err)
		}
		res.Groups++
	}

	s.log.Info("imported vocabulary",
		zap.Int64("set_id", setID),
		zap.Int("groups", res.Groups),
		zap.Int("skipped", res.Skipped),
	)
	return res, nil
}

// fillTranslation tries to translate the first non-empty column into
// the main language. Translation failures only cost the one word.
func (s *ImportS) fillTranslation(ctx context.Context, words map[string]string, order []string, codes map[string]string) {
	destCode, ok := codes[s.mainLanguage]
	if !ok {
		return
	}
	for _, lang := range order {
		src := words[lang]
		if lang == s.mainLanguage || src == "" {
			continue
		}
		srcCode, ok := codes[lang]
		if !ok {
			continue
		}
		translated, err := s.translator.Translate(ctx, src, srcCode, destCode)
		if err != nil {
			s.log.Warn("translation failed", zap.String("word", src), zap.Error(err))
			return
		}
		words[s.mainLanguage] = translated
		return
	}
}

func (s *ImportS) languageCodes(ctx context.Context) (map[string]string, error) {
	langs, err := s.repo.Languages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load languages: %w", err)
	}
	codes := make(map[string]string, len(langs))
	for _, l := range langs {
		codes[l.Name] = l.Code
	}
	return codes, nil
}

// parseLines splits raw text into token rows. Code fences, comment
// lines and markdown separator rows are dropped. The delimiter is
// detected per line: pipe (markdown table), tab, semicolon or comma.
func parseLines(text string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "```") {
			continue
		}
		if isSeparatorRow(line) {
			continue
		}

		var tokens []string
		switch {
		case strings.Contains(line, "|"):
			tokens = strings.Split(strings.Trim(line, "|"), "|")
		case strings.Contains(line, "\t"):
			tokens = strings.Split(line, "\t")
		case strings.Contains(line, ";"):
			tokens = strings.Split(line, ";")
		case strings.Contains(line, ","):
			tokens = strings.Split(line, ",")
		default:
			continue
		}

		for i := range tokens {
			tokens[i] = strings.TrimSpace(tokens[i])
		}
		if len(tokens) >= 2 {
			rows = append(rows, tokens)
		}
	}
	return rows
}

// isHeaderRow reports a first row that just repeats the column
// languages, as markdown tables and exported files carry.
func isHeaderRow(row, order []string) bool {
	if len(row) != len(order) {
		return false
	}
	for i := range row {
		if !strings.EqualFold(strings.TrimSpace(row[i]), order[i]) {
			return false
		}
	}
	return true
}

// isSeparatorRow reports markdown table divider lines like |---|---|.
func isSeparatorRow(line string) bool {
	stripped := strings.Map(func(r rune) rune {
		switch r {
		case '|', '-', ':', ' ':
			return -1
		}
		return r
	}, line)
	return stripped == "" && strings.Contains(line, "-")
}

// resolveOrder maps import columns to language names. An explicit order
// is title-cased; otherwise the second column is assumed to hold the
// main language and the rest stay unidentified.
func resolveOrder(explicit []string, columns int, mainLanguage string) []string {
	if len(explicit) > 0 {
		order := make([]string, len(explicit))
		for i, lang := range explicit {
			order[i] = titleCase(strings.TrimSpace(lang))
		}
		return order
	}

	order := make([]string, columns)
	for i := range order {
		if i == 1 {
			order[i] = mainLanguage
		} else {
			order[i] = fmt.Sprintf("Unknown%d", i+1)
		}
	}
	return order
}
