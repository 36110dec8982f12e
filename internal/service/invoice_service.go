package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/contract-console/internal/model"
	"github.com/nurpe/contract-console/internal/repository"
)

type ExcelGenerator interface {
	Generate(doc model.InvoiceDocument) ([]byte, error)
}

type PDFGenerator interface {
	Generate(doc model.InvoiceDocument) ([]byte, error)
}

type InvoiceService struct {
	contracts *repository.ContractRepository
	points    *repository.PointRepository
	excel     ExcelGenerator
	pdf       PDFGenerator
}

type ExportResult struct {
	FileName string
	Content  []byte
}

func NewInvoiceService(
	contracts *repository.ContractRepository,
	points *repository.PointRepository,
	excel ExcelGenerator,
	pdf PDFGenerator,
) *InvoiceService {
	return &InvoiceService{contracts: contracts, points: points, excel: excel, pdf: pdf}
}

// BuildDocument assembles the invoice material for one contract. The total
// is recomputed from exactly the points included in the document, so an
// export always matches the table it was generated from.
func (s *InvoiceService) BuildDocument(ctx context.Context, contractID uuid.UUID) (*model.InvoiceDocument, error) {
	if contractID == uuid.Nil {
		return nil, fmt.Errorf("%w: contract_id is required", ErrInvalidInput)
	}
	contract, err := s.contracts.Get(ctx, contractID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	points, err := s.points.ListByContract(ctx, contractID)
	if err != nil {
		return nil, err
	}

	total := 0.0
	for _, point := range points {
		total += model.ParseValue(point.Value)
	}

	return &model.InvoiceDocument{
		Contract:    *contract,
		Points:      points,
		TotalPoints: int64(len(points)),
		TotalValue:  total,
	}, nil
}

func (s *InvoiceService) ExportExcel(ctx context.Context, contractID uuid.UUID) (*ExportResult, error) {
	doc, err := s.BuildDocument(ctx, contractID)
	if err != nil {
		return nil, err
	}
	content, err := s.excel.Generate(*doc)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: buildFileName(doc.Contract, "xlsx"),
		Content:  content,
	}, nil
}

func (s *InvoiceService) ExportPDF(ctx context.Context, contractID uuid.UUID) (*ExportResult, error) {
	doc, err := s.BuildDocument(ctx, contractID)
	if err != nil {
		return nil, err
	}
	content, err := s.pdf.Generate(*doc)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: buildFileName(doc.Contract, "pdf"),
		Content:  content,
	}, nil
}

func buildFileName(contract model.Contract, extension string) string {
	name := sanitizeFileName(contract.ContractName)
	if name == "" {
		name = contract.ID.String()
	}
	return fmt.Sprintf("invoice-%s-%s-%s.%s", name, contract.StartDate, contract.EndDate, extension)
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r)
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}
