package export

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/artem13815/staffing/pkg/nlp"
	"github.com/artem13815/staffing/pkg/staffing"
)

// Названия листов выгрузки.
const (
	SheetRequest      = "Request"
	SheetItems        = "Items"
	SheetTechnologies = "Technologies"
	SheetMatches      = "Matches"
)

// Service рендерит разобранную заявку в XLSX.
type Service struct {
	logger *zap.Logger
}

func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger}
}

// RequestXLSX возвращает книгу из четырёх листов: карточка заявки, пункты,
// технологии по корзинам и совпадения паттернов.
func (s *Service) RequestXLSX(_ context.Context, r staffing.Request) ([]byte, error) {
	start := time.Now()
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetRequest); err != nil {
		return nil, err
	}
	for _, name := range []string{SheetItems, SheetTechnologies, SheetMatches} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
	}
	ex := r.Extraction

	card := [][]any{
		{"Field", "Value"},
		{"ID", r.ID.String()},
		{"Filename", r.Filename},
		{"Role", ex.Meta.Role},
		{"Technology", ex.Meta.Technology},
		{"Company", ex.Meta.Company},
		{"Manager", ex.Meta.Manager},
		{"Request ID", ex.Meta.RequestID},
		{"Country", ex.Meta.Country},
		{"Links", strings.Join(ex.Links, "\n")},
		{"Dates", strings.Join(ex.Dates, ", ")},
		{"Description", ex.Description},
		{"Missing items", joinInts(ex.MissingItems)},
		{"Summary", r.Summary},
		{"Created", r.CreatedAt.Format(time.RFC3339)},
	}
	if err := writeRows(f, SheetRequest, card); err != nil {
		return nil, err
	}

	items := [][]any{{"No", "Text", "Technologies"}}
	for _, n := range nlp.ItemNumbers(nlp.FillMissingItems(ex.Items)) {
		text, ok := ex.Items[n]
		if !ok {
			text = nlp.MissingValue
		}
		items = append(items, []any{n, text, strings.Join(ex.ItemTechnologies[n].All(), ", ")})
	}
	if err := writeRows(f, SheetItems, items); err != nil {
		return nil, err
	}

	techs := [][]any{{"Bucket", "Term"}}
	for _, b := range []struct {
		bucket nlp.Bucket
		terms  []string
	}{
		{nlp.BucketRequired, ex.Technologies.Required},
		{nlp.BucketPreferred, ex.Technologies.Preferred},
		{nlp.BucketLeadership, ex.Technologies.Leadership},
	} {
		for _, t := range b.terms {
			techs = append(techs, []any{string(b.bucket), t})
		}
	}
	if err := writeRows(f, SheetTechnologies, techs); err != nil {
		return nil, err
	}

	matches := [][]any{{"Pattern", "Value", "Confidence", "Position"}}
	for _, name := range nlp.Patterns() {
		for _, m := range ex.Matches[name] {
			matches = append(matches, []any{string(m.Pattern), m.Value, m.Confidence, m.Position})
		}
	}
	if err := writeRows(f, SheetMatches, matches); err != nil {
		return nil, err
	}

	_ = f.SetColWidth(SheetRequest, "A", "A", 16)
	_ = f.SetColWidth(SheetRequest, "B", "B", 80)
	_ = f.SetColWidth(SheetItems, "A", "A", 6)
	_ = f.SetColWidth(SheetItems, "B", "B", 80)
	_ = f.SetColWidth(SheetItems, "C", "C", 40)
	_ = f.SetColWidth(SheetMatches, "A", "A", 18)
	_ = f.SetColWidth(SheetMatches, "B", "B", 60)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	s.logger.Info("export.xlsx.ok",
		zap.String("request_id", r.ID.String()),
		zap.Int("items", len(items)-1),
		zap.Int64("elapsed_ms", time.Since(start).Milliseconds()),
	)
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("sheet %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func joinInts(ns []int) string {
	sorted := append([]int(nil), ns...)
	sort.Ints(sorted)
	parts := make([]string, len(sorted))
	for i, n := range sorted {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ", ")
}
