package label

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/png"
	"strings"
	"time"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/go-pdf/fpdf"
	"github.com/skip2/go-qrcode"
	"ojitos/internal/entities"
)

const (
	scanAction      = "package_scan"
	unknownCustomer = "N/A"

	labelWidthMM  = 100.0
	labelHeightMM = 150.0

	qrSizePx        = 256
	barcodeWidthPx  = 600
	barcodeHeightPx = 150

	cpclDots = 1200
)

// QRPayload is what the mobile scanner reads. Field names and order are part
// of the scanning contract.
type QRPayload struct {
	ID       string `json:"id"`
	Tracking string `json:"tracking"`
	Customer string `json:"customer"`
	Status   string `json:"status"`
	Action   string `json:"action"`
}

func NewQRPayload(pkg entities.Package) QRPayload {
	customer := pkg.CustomerName
	if customer == "" {
		customer = unknownCustomer
	}

	return QRPayload{
		ID:       pkg.ID,
		Tracking: pkg.TrackingNumber,
		Customer: customer,
		Status:   pkg.Status.String(),
		Action:   scanAction,
	}
}

// QRPayloadFor encodes the payload verbatim: no HTML escaping and no
// trailing newline.
func QRPayloadFor(pkg entities.Package) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(NewQRPayload(pkg)); err != nil {
		return "", fmt.Errorf("marshal qr payload: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func BarcodePayload(pkg entities.Package) string {
	return pkg.TrackingNumber
}

func QRCodePNG(pkg entities.Package) ([]byte, error) {
	payload, err := QRPayloadFor(pkg)
	if err != nil {
		return nil, err
	}

	img, err := qrcode.Encode(payload, qrcode.Medium, qrSizePx)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return img, nil
}

func BarcodePNG(pkg entities.Package) ([]byte, error) {
	code, err := code128.Encode(BarcodePayload(pkg))
	if err != nil {
		return nil, fmt.Errorf("encode code128: %w", err)
	}

	scaled, err := barcode.Scale(code, barcodeWidthPx, barcodeHeightPx)
	if err != nil {
		return nil, fmt.Errorf("scale barcode: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("encode barcode png: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPDF lays a package out on a 10x15 cm label.
func RenderPDF(pkg entities.Package) ([]byte, error) {
	qr, err := QRCodePNG(pkg)
	if err != nil {
		return nil, err
	}
	bar, err := BarcodePNG(pkg)
	if err != nil {
		return nil, err
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: labelWidthMM, Ht: labelHeightMM},
	})
	pdf.SetCreationDate(labelDate(pkg))
	pdf.SetCatalogSort(true)
	pdf.SetMargins(5, 5, 5)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(5, 12, "ENVIOS OJITOS")
	pdf.SetLineWidth(0.4)
	pdf.Line(5, 15, 95, 15)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(5, 23, tr("Guía: "+truncate(pkg.TrackingNumber, 24)))

	pdf.SetFont("Helvetica", "", 10)
	lines := labelLines(pkg)
	for i, line := range lines {
		pdf.Text(5, 31+float64(i)*6, tr(line))
	}

	pdf.RegisterImageOptionsReader("qr", fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qr))
	pdf.ImageOptions("qr", 25, 70, 50, 50, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	pdf.RegisterImageOptionsReader("barcode", fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(bar))
	pdf.ImageOptions("barcode", 10, 124, 80, 18, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.Text(30, 146, truncate(BarcodePayload(pkg), 32))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderCPCL produces the command stream for 203 dpi thermal printers
// (800x1200 dots for a 10x15 cm label).
func RenderCPCL(pkg entities.Package) ([]byte, error) {
	payload, err := QRPayloadFor(pkg)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "! 0 200 200 %d 1\r\n", cpclDots)
	b.WriteString("PAGE-WIDTH 800\r\n")
	b.WriteString("TEXT 4 0 30 30 ENVIOS OJITOS\r\n")
	b.WriteString("LINE 30 90 770 90 3\r\n")
	fmt.Fprintf(&b, "TEXT 4 0 30 110 %s\r\n", cpclText(truncate(pkg.TrackingNumber, 24)))
	for i, line := range labelLines(pkg) {
		fmt.Fprintf(&b, "TEXT 7 0 30 %d %s\r\n", 190+i*45, cpclText(line))
	}
	b.WriteString("B QR 250 520 M 2 U 8\r\n")
	fmt.Fprintf(&b, "MA,%s\r\n", payload)
	b.WriteString("ENDQR\r\n")
	fmt.Fprintf(&b, "BARCODE 128 2 1 120 60 1000 %s\r\n", BarcodePayload(pkg))
	fmt.Fprintf(&b, "TEXT 7 0 60 1130 %s\r\n", cpclText(BarcodePayload(pkg)))
	b.WriteString("FORM\r\n")
	b.WriteString("PRINT\r\n")

	return []byte(b.String()), nil
}

func labelLines(pkg entities.Package) []string {
	customer := pkg.CustomerName
	if customer == "" {
		customer = unknownCustomer
	}

	lines := []string{
		"Cliente: " + truncate(customer, 32),
		"Origen: " + truncate(pkg.Origin, 30),
		"Destino: " + truncate(pkg.Destination, 30),
		"Peso: " + pkg.Weight.StringFixed(2) + " kg",
		"Contenido: " + truncate(pkg.Description, 28),
	}
	if amount := pkg.CollectAmount(); amount.IsPositive() {
		lines = append(lines, "Cobrar: "+amount.StringFixed(0)+" "+pkg.Currency.String())
	}
	return lines
}

// truncate cuts s to at most limit runes, ending in "..." when shortened.
func truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// cpclText keeps printer text on one line.
func cpclText(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

func labelDate(pkg entities.Package) time.Time {
	if pkg.CreatedAt.IsZero() {
		return time.Unix(0, 0).UTC()
	}
	return pkg.CreatedAt.UTC()
}
