package export

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/limaJavier/coursetable/pkg/model"
	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"
)

var ErrNoTimetables = errors.New("there are no timetables to export")

const summarySheet = "Summary"

func TimetableSheet(index int) string {
	return fmt.Sprintf("Timetable %d", index+1)
}

func cell(column, row int) string {
	name, _ := excelize.CoordinatesToCellName(column, row)
	return name
}

// Writes result as an xlsx workbook: a summary sheet listing every chosen option and one weekly grid
// sheet per timetable
func Workbook(result model.SearchResult) (*bytes.Buffer, error) {
	if len(result.Timetables) == 0 {
		return nil, ErrNoTimetables
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DBEAFE"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("cannot create header style: %w", err)
	}
	courseStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return nil, fmt.Errorf("cannot create course style: %w", err)
	}

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if err := writeSummary(f, result, headerStyle); err != nil {
		return nil, fmt.Errorf("cannot write summary: %w", err)
	}

	for i, timetable := range result.Timetables {
		if err := writeTimetable(f, TimetableSheet(i), timetable, headerStyle, courseStyle); err != nil {
			return nil, fmt.Errorf("cannot write timetable %d: %w", i+1, err)
		}
	}

	buffer := new(bytes.Buffer)
	if err := f.Write(buffer); err != nil {
		return nil, fmt.Errorf("cannot write workbook: %w", err)
	}
	return buffer, nil
}

func writeSummary(f *excelize.File, result model.SearchResult, headerStyle int) error {
	header := []any{"Timetable", "Code", "Title", "Slots"}
	if err := f.SetSheetRow(summarySheet, "A1", &header); err != nil {
		return err
	}
	if err := f.SetCellStyle(summarySheet, "A1", "D1", headerStyle); err != nil {
		return err
	}
	f.SetColWidth(summarySheet, "A", "A", 11)
	f.SetColWidth(summarySheet, "B", "B", 14)
	f.SetColWidth(summarySheet, "C", "C", 36)
	f.SetColWidth(summarySheet, "D", "D", 28)

	row := 2
	for i, timetable := range result.Timetables {
		for _, assignment := range timetable {
			values := []any{i + 1, assignment.Course.Code, assignment.Course.Title, model.FormatOption(assignment.Chosen)}
			if err := f.SetSheetRow(summarySheet, cell(1, row), &values); err != nil {
				return err
			}
			row++
		}
	}

	if result.Partial {
		return f.SetCellValue(summarySheet, cell(1, row+1), "The search stopped early; more timetables may exist")
	}
	return nil
}

func writeTimetable(f *excelize.File, sheet string, timetable model.Timetable, headerStyle, courseStyle int) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	header := append([]any{"Time"}, lo.ToAnySlice(model.DayNames[:])...)
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", cell(model.Days+1, 1), headerStyle); err != nil {
		return err
	}
	f.SetColWidth(sheet, "A", "A", 8)
	lastColumn, _ := excelize.ColumnNumberToName(model.Days + 1)
	f.SetColWidth(sheet, "B", lastColumn, 22)

	grid := model.Project(timetable)
	for hour := 1; hour <= model.Hours; hour++ {
		row := hour + 1
		if err := f.SetCellValue(sheet, cell(1, row), hour); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell(1, row), cell(1, row), headerStyle); err != nil {
			return err
		}
		f.SetRowHeight(sheet, row, 32)

		for day := range model.Days {
			content := grid.At(day, hour)
			if content == nil {
				continue
			}
			name := cell(day+2, row)
			if err := f.SetCellValue(sheet, name, content.Code+"\n"+content.Title); err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet, name, name, courseStyle); err != nil {
				return err
			}
		}
	}
	return nil
}
