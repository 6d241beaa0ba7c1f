// Package export renders listBusinesses output into the interchange
// formats the application offers: CSV and a printable PDF report.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/bytesized/business-boost/internal/domain/entities"
	apperrors "github.com/bytesized/business-boost/pkg/errors"
	"github.com/bytesized/business-boost/pkg/utils"
)

// Options selects the optional column groups of an export.
type Options struct {
	// IncludeContact adds the Phone and Email columns
	IncludeContact bool

	// IncludeDeals adds the Deals column
	IncludeDeals bool
}

// header returns the column set shared by the CSV and PDF formats.
func (o Options) header() []string {
	columns := []string{"Name", "Category", "Address", "Rating", "Review Count"}
	if o.IncludeContact {
		columns = append(columns, "Phone", "Email")
	}
	if o.IncludeDeals {
		columns = append(columns, "Deals")
	}
	return columns
}

// row renders one business using the same column order as header.
func (o Options) row(b *entities.Business) []string {
	row := []string{
		b.Name,
		utils.Capitalize(b.Category),
		b.Address,
		formatRating(b.Rating),
		strconv.Itoa(b.ReviewCount),
	}
	if o.IncludeContact {
		row = append(row, b.Phone, b.Email)
	}
	if o.IncludeDeals {
		row = append(row, b.Deals)
	}
	return row
}

// WriteCSV writes the businesses to w as CSV with a header row.
func WriteCSV(w io.Writer, businesses []*entities.Business, opts Options) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(opts.header()); err != nil {
		return apperrors.NewInternalError("failed to write csv header", err)
	}
	for _, business := range businesses {
		if err := cw.Write(opts.row(business)); err != nil {
			return apperrors.NewInternalError("failed to write csv row", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return apperrors.NewInternalError("failed to flush csv", err)
	}
	return nil
}

func formatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'f', -1, 64)
}
