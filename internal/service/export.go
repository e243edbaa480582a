package service

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/yudiz-dhruv/finwise-advisor-go/internal/domain"
)

// WriteOffersCSV streams the displayed offers as CSV: a title line, a
// header, then one row per offer in display order.
func WriteOffersCSV(w io.Writer, offers []domain.LoanOffer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Bank Offers Export"}); err != nil {
		return err
	}
	if err := cw.Write([]string{"Name", "Rate", "Fee"}); err != nil {
		return err
	}
	for _, o := range offers {
		row := []string{
			o.BankName,
			strconv.FormatFloat(o.InterestRate, 'f', -1, 64),
			o.ProcessingFee,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
