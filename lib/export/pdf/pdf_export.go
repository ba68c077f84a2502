package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	applicationsapimodels "job-portal-backend/models/api/applications"
)

// GenerateApplicantSheet renders a single-page summary of an application for
// the owning employer.
func GenerateApplicantSheet(detail applicationsapimodels.ApplicantDetail) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateApplicantSheet panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.CellFormat(0, 10, "Applicant Details", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	writeSection(pdf, "Applicant")
	writeField(pdf, "Name", detail.JobSeeker.Name)
	writeField(pdf, "Email", detail.JobSeeker.Email)
	writeField(pdf, "Education", detail.JobSeeker.Profile.Education)
	writeField(pdf, "Experience", detail.JobSeeker.Profile.Experience)
	writeField(pdf, "Skills", detail.JobSeeker.Profile.Skills)
	if detail.JobSeeker.ResumeFilename != "" {
		writeField(pdf, "Resume", detail.JobSeeker.ResumeFilename)
	}
	pdf.Ln(4)

	writeSection(pdf, "Position")
	writeField(pdf, "Title", detail.Job.Title)
	writeField(pdf, "Company", detail.Job.CompanyName)
	writeField(pdf, "Category", detail.Job.Category)
	writeField(pdf, "Location", detail.Job.Location)
	writeField(pdf, "Salary", fmt.Sprintf("%.2f", detail.Job.Salary))
	pdf.Ln(4)

	writeSection(pdf, "Application")
	writeField(pdf, "Status", detail.Application.Status)
	writeField(pdf, "Applied At", detail.Application.DateApplied.Format("2006-01-02 15:04:05"))

	buf := new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSection(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
}

func writeField(pdf *fpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(40, 7, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 7, value, "", "L", false)
}
