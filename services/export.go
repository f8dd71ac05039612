package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/sarang-church/backend/models"
)

var (
	colorHeader = "#4B6587"
	colorText   = "#FFFFFF"
)

// NewsToExcel renders the news list as an XLSX workbook.
func NewsToExcel(posts []models.NewsPost) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "News"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Size:  11,
			Color: colorText,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{colorHeader},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})

	headers := []string{"ID", "Date", "Category", "Title", "Views", "On Home"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	f.SetCellStyle(sheet, "A1", "F1", headerStyle)
	f.SetRowHeight(sheet, 1, 22)

	for i, p := range posts {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), p.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), p.Date)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), p.Category)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), p.Title)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), p.Views)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), p.ShowOnHome)
	}
	f.SetColWidth(sheet, "B", "C", 14)
	f.SetColWidth(sheet, "D", "D", 48)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
