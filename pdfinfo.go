package textpdf

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

var disablePDFCPUConfig sync.Once

// pdfcpuConfig returns a relaxed validation config. pdfcpu's on-disk config
// directory is disabled so reading a PDF never writes to the user's home.
func pdfcpuConfig() *model.Configuration {
	disablePDFCPUConfig.Do(api.DisableConfigDir)
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// CountPages returns the number of pages in a PDF.
func CountPages(data []byte) (int, error) {
	n, err := api.PageCount(bytes.NewReader(data), pdfcpuConfig())
	if err != nil {
		return 0, fmt.Errorf("counting pages: %w", err)
	}
	return n, nil
}

// ValidatePDF checks that data is a well-formed PDF.
func ValidatePDF(data []byte) error {
	if err := api.Validate(bytes.NewReader(data), pdfcpuConfig()); err != nil {
		return fmt.Errorf("validating PDF: %w", err)
	}
	return nil
}
