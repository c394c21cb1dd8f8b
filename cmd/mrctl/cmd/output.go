package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	apiclient "github.com/donaldgifford/maardu-realty/internal/api/client"
	domain "github.com/donaldgifford/maardu-realty/pkg/types"
)

const timeLayout = "2006-01-02 15:04:05"

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printListingsTable(w io.Writer, resp *apiclient.ListingsResponse) error {
	tw := newTabWriter(w)
	tw.writef("ID\tTITLE\tPRICE\tOWNER\tEXPIRES\n")
	for i := range resp.Listings {
		l := &resp.Listings[i]
		tw.writef("%s\t%s\t€%.2f\t%s\t%s\n",
			l.ID,
			truncate(l.Title, 40),
			l.Price,
			l.UserID,
			formatTime(l.ExpiresAt),
		)
	}
	tw.writef("\n%d of %d listings shown\n", resp.Visible, resp.Total)
	return tw.finish()
}

func printPaymentsTable(w io.Writer, runs []domain.PipelineRun) error {
	tw := newTabWriter(w)
	tw.writef("ID\tLISTING\tSTEP\tATTEMPTS\tUPDATED\tERROR\n")
	for i := range runs {
		r := &runs[i]
		tw.writef("%s\t%s\t%s\t%d\t%s\t%s\n",
			r.ID,
			r.ListingID,
			stepLabel(r),
			r.Attempts,
			r.UpdatedAt.Format(timeLayout),
			truncate(r.LastError, 40),
		)
	}
	return tw.finish()
}

func printPaymentDetail(w io.Writer, r *domain.PipelineRun) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", r.ID)
	tw.writef("Listing:\t%s\n", r.ListingID)
	tw.writef("Step:\t%s\n", stepLabel(r))
	tw.writef("Attempts:\t%d\n", r.Attempts)
	tw.writef("Invoice Type:\t%s\n", r.Draft.InvoiceType)
	if bd := r.Draft.BusinessDetails; bd != nil {
		tw.writef("Business:\t%s (%s)\n", bd.Name, bd.RegistryCode)
	}
	if r.Invoice != nil {
		tw.writef("Invoice:\t%s\n", invoiceLabel(r.Invoice))
	}
	if r.LastError != "" {
		tw.writef("Last Error:\t%s\n", r.LastError)
	}
	tw.writef("Created:\t%s\n", r.CreatedAt.Format(timeLayout))
	tw.writef("Completed:\t%s\n", formatTime(r.CompletedAt))
	return tw.finish()
}

func printSessionDetail(w io.Writer, v *apiclient.SessionView) error {
	tw := newTabWriter(w)
	if v.User != nil {
		tw.writef("User:\t%s\n", v.User.ID)
		if v.User.Email != "" {
			tw.writef("Email:\t%s\n", v.User.Email)
		}
	} else {
		tw.writef("User:\t(anonymous)\n")
	}

	features := make([]string, len(v.Features))
	for i, f := range v.Features {
		features[i] = string(f)
	}
	tw.writef("Features:\t%s\n", strings.Join(features, ", "))
	return tw.finish()
}

func printExpirationSummary(w io.Writer, s *apiclient.ExpirationSummary) error {
	tw := newTabWriter(w)
	tw.writef("Day:\t%s\n", s.Day.Format(time.DateOnly))
	tw.writef("Expired:\t%d\n", s.Expired)
	tw.writef("Sent:\t%d\n", s.Sent)
	tw.writef("Skipped:\t%d\n", s.Skipped)
	tw.writef("Failed:\t%d\n", s.Failed)
	return tw.finish()
}

func printJobStatusTable(w io.Writer, jobs []domain.JobStatus) error {
	tw := newTabWriter(w)
	tw.writef("JOB\tLAST STATUS\tSTARTED\tCOMPLETED\tERROR\n")
	for i := range jobs {
		j := &jobs[i]
		if j.LastRun == nil {
			tw.writef("%s\tnever run\t-\t-\t\n", j.Name)
			continue
		}
		r := j.LastRun
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			j.Name,
			r.Status,
			r.StartedAt.Format(timeLayout),
			formatTime(r.CompletedAt),
			truncate(r.ErrorText, 40),
		)
	}
	return tw.finish()
}

func printJobRunsTable(w io.Writer, runs []domain.JobRun) error {
	tw := newTabWriter(w)
	tw.writef("JOB\tSTATUS\tSTARTED\tCOMPLETED\tROWS\tERROR\n")
	for i := range runs {
		r := &runs[i]
		rows := "-"
		if r.RowsAffected != nil {
			rows = fmt.Sprintf("%d", *r.RowsAffected)
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			r.JobName,
			r.Status,
			r.StartedAt.Format(timeLayout),
			formatTime(r.CompletedAt),
			rows,
			truncate(r.ErrorText, 40),
		)
	}
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func stepLabel(r *domain.PipelineRun) string {
	if r.Step == domain.StepFailed && r.FailedStep != "" {
		return fmt.Sprintf("failed after %s", r.FailedStep)
	}
	return string(r.Step)
}

func invoiceLabel(inv *domain.Invoice) string {
	if inv.Number != "" {
		return inv.Number
	}
	return inv.ID
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(timeLayout)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
