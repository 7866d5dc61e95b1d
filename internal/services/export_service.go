package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Adarshkumar111/Maintenance/internal/models"
)

const complaintSheet = "Complaints"

// ExportService builds spreadsheet downloads for the admin dashboard
type ExportService struct{}

// NewExportService creates a new export service
func NewExportService() *ExportService {
	return &ExportService{}
}

// ComplaintsXLSX writes the complaint table to an XLSX workbook
func (s *ExportService) ComplaintsXLSX(complaints []models.Complaint) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(complaintSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	_ = f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	header := []string{"ID", "Type", "Location", "ITS No", "Category", "Description", "Status", "Urgency", "Assigned To", "Created At"}
	for c, v := range header {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		_ = f.SetCellValue(complaintSheet, cell, v)
	}

	for r, complaint := range complaints {
		row := r + 2
		assignedTo := complaint.AssignedTo
		if assignedTo == "" {
			assignedTo = "Unassigned"
		}
		values := []any{
			complaint.ID,
			string(complaint.Type()),
			complaint.Location(),
			complaint.ITSNo,
			complaint.Category,
			complaint.Description,
			string(complaint.Status),
			string(complaint.Urgency),
			assignedTo,
			complaint.CreatedAt.Format("2006-01-02 15:04"),
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, row)
			_ = f.SetCellValue(complaintSheet, cell, v)
		}
	}

	_ = f.SetColWidth(complaintSheet, "A", "B", 8)
	_ = f.SetColWidth(complaintSheet, "C", "E", 14)
	_ = f.SetColWidth(complaintSheet, "F", "F", 36)
	_ = f.SetColWidth(complaintSheet, "G", "I", 14)
	_ = f.SetColWidth(complaintSheet, "J", "J", 18)

	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1F2937"}, Pattern: 1},
	})
	_ = f.SetCellStyle(complaintSheet, "A1", "J1", style)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
