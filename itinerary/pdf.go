package itinerary

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"tierranativa/models"
	"tierranativa/utils"
)

// BuildPDF renders a printable itinerary for one package. detailURL is
// encoded into a QR code so the printed sheet links back to the detail page.
func BuildPDF(pkg models.Package, detailURL string) ([]byte, error) {
	qrPNG, err := qrcode.Encode(detailURL, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("qr code: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, tr(pkg.Name))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, tr("Destino: "+pkg.Destination))
	pdf.Ln(7)
	pdf.Cell(0, 8, tr("Precio base: "+utils.FormatCurrency(pkg.BasePrice)))
	pdf.Ln(10)

	it := pkg.ItineraryDetail
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, tr("Resumen del Itinerario"))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	for _, line := range []string{
		"Duración: " + it.Duration,
		"Hospedaje: " + it.LodgingType,
		"Traslados: " + it.TransferType,
		"Alimentación e Hidratación: " + it.FoodAndHydrationNotes,
	} {
		pdf.MultiCell(0, 6, tr(line), "", "L", false)
		pdf.Ln(1)
	}

	pdf.Ln(3)
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, tr("Planificación día por día"))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	for _, day := range ParseDays(it.DailyActivitiesDescription) {
		line := day.Description
		if day.Label != "" {
			line = day.Label + " " + day.Description
		}
		pdf.MultiCell(0, 6, tr("- "+line), "", "L", false)
	}

	if recs := SplitSentences(it.GeneralRecommendations); len(recs) > 0 {
		pdf.Ln(3)
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 8, tr("Recomendaciones Generales"))
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 11)
		for _, rec := range recs {
			pdf.MultiCell(0, 6, tr("- "+rec), "", "L", false)
		}
	}

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 160, 10, 35, 35, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}
