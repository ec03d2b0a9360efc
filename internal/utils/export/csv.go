// Package export renders rollups and raw records as a sectioned CSV
// document, the closest plain-text stand-in for a workbook with one
// sheet per rollup. Amounts are rounded to two decimal places here, at
// the output boundary only.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/evfin/event_finance_app/internal/core/domain"
)

const amountScale = 2

func money(d decimal.Decimal) string {
	return d.Round(amountScale).StringFixed(amountScale)
}

// WriteRollups writes every section to w: budget line rollups, account
// rollups, then the raw transactions and sponsorships. Sections are
// separated by a blank record and open with a single-cell title row so
// spreadsheet imports keep them apart.
func WriteRollups(
	w io.Writer,
	settings domain.Settings,
	lineRollups []domain.BudgetLineRollup,
	accountRollups []domain.AccountRollup,
	txns []domain.Transaction,
	sponsorships []domain.Sponsorship,
) error {
	cw := csv.NewWriter(w)

	if err := writeBudgetLineSection(cw, settings, lineRollups); err != nil {
		return err
	}
	if err := writeAccountSection(cw, settings, accountRollups); err != nil {
		return err
	}
	if err := writeTransactionSection(cw, txns); err != nil {
		return err
	}
	if err := writeSponsorshipSection(cw, sponsorships); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}

func writeBudgetLineSection(cw *csv.Writer, settings domain.Settings, rollups []domain.BudgetLineRollup) error {
	if err := cw.Write([]string{"Budget lines"}); err != nil {
		return err
	}
	header := []string{
		"Macro category", "Name", "Currency",
		"Planned", "Spent", "Income", "Sponsored",
		"Planned (" + settings.ReportingCurrency + ")",
		"Spent (" + settings.ReportingCurrency + ")",
		"Income (" + settings.ReportingCurrency + ")",
		"Sponsored (" + settings.ReportingCurrency + ")",
		"Balance (" + settings.ReportingCurrency + ")",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range rollups {
		record := []string{
			r.MacroCategory, r.Name, r.CurrencyCode,
			money(r.Planned), money(r.Spent), money(r.Income), money(r.Sponsored),
			money(r.PlannedReporting), money(r.SpentReporting),
			money(r.IncomeReporting), money(r.SponsoredReporting),
			money(r.BalanceReporting),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	return cw.Write([]string{})
}

func writeAccountSection(cw *csv.Writer, settings domain.Settings, rollups []domain.AccountRollup) error {
	if err := cw.Write([]string{"Accounts"}); err != nil {
		return err
	}
	header := []string{
		"Account",
		"Income (" + settings.ReportingCurrency + ")",
		"Expense (" + settings.ReportingCurrency + ")",
		"Balance (" + settings.ReportingCurrency + ")",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range rollups {
		record := []string{
			r.Account,
			money(r.IncomeReporting), money(r.ExpenseReporting), money(r.BalanceReporting),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	return cw.Write([]string{})
}

func writeTransactionSection(cw *csv.Writer, txns []domain.Transaction) error {
	if err := cw.Write([]string{"Transactions"}); err != nil {
		return err
	}
	header := []string{
		"Date", "Type", "Description", "Counterparty",
		"Amount", "Currency", "Payment method", "Account", "Allocated lines",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, t := range txns {
		record := []string{
			t.Date.Format("2006-01-02"),
			string(t.Type),
			t.Description,
			t.Counterparty,
			money(t.Amount),
			t.CurrencyCode,
			string(t.PaymentMethod),
			t.Account,
			strconv.Itoa(len(t.Allocations)),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	return cw.Write([]string{})
}

func writeSponsorshipSection(cw *csv.Writer, sponsorships []domain.Sponsorship) error {
	if err := cw.Write([]string{"Sponsorships"}); err != nil {
		return err
	}
	header := []string{
		"Sponsor", "Status", "Pledged", "Paid", "Currency",
		"Payment method", "Account", "Allocated lines",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, s := range sponsorships {
		record := []string{
			s.SponsorName,
			string(s.Status),
			money(s.PledgedAmount),
			money(s.PaidAmount),
			s.CurrencyCode,
			string(s.PaymentMethod),
			s.Account,
			strconv.Itoa(len(s.Allocations)),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	return nil
}
