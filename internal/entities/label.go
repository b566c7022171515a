package entities

import "time"

type LabelFormat string

const (
	LabelPDF  LabelFormat = "pdf"
	LabelCPCL LabelFormat = "cpcl"
)

func (f LabelFormat) String() string {
	return string(f)
}

func (f LabelFormat) ContentType() string {
	if f == LabelCPCL {
		return "text/plain; charset=utf-8"
	}
	return "application/pdf"
}

type PackageLabel struct {
	ID        string
	PackageID string
	Format    LabelFormat
	URL       string
	PrintedAt time.Time
}

type RenderedLabel struct {
	Format LabelFormat
	Body   []byte
	// URL is empty when object storage is disabled.
	URL    string
	Status PackageStatus
}
