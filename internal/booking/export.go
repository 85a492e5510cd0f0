package booking

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// buildReceiptPDF renders a one-page booking receipt.
func buildReceiptPDF(b *Booking) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Divine Darshan - Booking Receipt")
	pdf.Ln(14)

	rows := [][2]string{
		{"Payment Reference", b.ID},
		{"Devotee", b.FullName},
		{"Email", b.UserEmail},
		{"Phone", b.PhoneNumber},
		{"Puja", b.PujaNameKey},
		{"Temple", b.TempleNameKey},
		{"Date", b.Date},
		{"Devotees", fmt.Sprint(b.NumDevotees)},
		{"Amount Paid", fmt.Sprintf("INR %.2f", b.Price)},
		{"Status", b.Status},
	}

	pdf.SetFont("Arial", "", 11)
	for _, row := range rows {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(50, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(120, 8, row[1], "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	if b.IsEPuja && b.LiveStreamLink != "" {
		pdf.Ln(4)
		pdf.SetFont("Arial", "I", 10)
		pdf.Cell(40, 8, "Live stream: "+b.LiveStreamLink)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// buildBookingsXLSX renders the admin export sheet.
func buildBookingsXLSX(bookings []Booking) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Bookings"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headers := []string{"Payment ID", "User Email", "Full Name", "Phone", "Puja", "Temple", "Date", "Devotees", "Price", "Status", "E-Puja"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, h)
	}

	for rIdx, b := range bookings {
		row := rIdx + 2
		values := []interface{}{b.ID, b.UserEmail, b.FullName, b.PhoneNumber, b.PujaNameKey, b.TempleNameKey, b.Date, b.NumDevotees, b.Price, b.Status, b.IsEPuja}
		for cIdx, v := range values {
			cell, err := excelize.CoordinatesToCellName(cIdx+1, row)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
