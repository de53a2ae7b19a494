package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/capgains"
	md "github.com/nao1215/markdown"
)

// FeesMarkdown renders the fees paid over year.
func FeesMarkdown(year int, fees capgains.Money) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Fees %d", year))
	doc.PlainText(fmt.Sprintf("Transaction and exchange connection fees: %s", md.Bold(fees.String())))
	return doc.String()
}

// DepositsMarkdown renders the deposits of every year and their total.
func DepositsMarkdown(years []capgains.YearAmount, total capgains.Money) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Deposits")
	if len(years) == 0 {
		doc.PlainText("No deposits found.")
		return doc.String()
	}
	table := md.TableSet{Header: []string{"Year", "Deposits"}}
	for _, y := range years {
		table.Rows = append(table.Rows, []string{fmt.Sprint(y.Year), y.Amount.String()})
	}
	table.Rows = append(table.Rows, []string{md.Bold("Total"), md.Bold(total.String())})
	doc.Table(table)
	return doc.String()
}

// DividendsMarkdown renders the dividends of year.
func DividendsMarkdown(year int, dividends []capgains.Dividend) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Dividends %d", year))
	writeDividends(doc, dividends)
	return doc.String()
}

func writeDividends(doc *md.Markdown, dividends []capgains.Dividend) {
	if len(dividends) == 0 {
		doc.PlainText("No dividends found.")
		return
	}
	table := md.TableSet{Header: []string{"Product", "ISIN", "Gross", "Tax", "Net"}}
	for _, d := range dividends {
		table.Rows = append(table.Rows, []string{
			d.Product,
			d.InstrumentID,
			capgains.M(d.Value, d.Currency).String(),
			capgains.M(d.ValueTax, d.Currency).String(),
			d.Net().String(),
		})
	}
	doc.Table(table)
}
