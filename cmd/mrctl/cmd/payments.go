package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/maardu-realty/internal/api/client"
	domain "github.com/donaldgifford/maardu-realty/pkg/types"
)

func paymentsCmd() *cobra.Command {
	paymentsRoot := &cobra.Command{
		Use:   "payments",
		Short: "Record, inspect, and resume payments",
		Long: "Payments run a five-step pipeline: draft the invoice, activate\n" +
			"the listing, generate the invoice, email the confirmation, and\n" +
			"refresh listings. Every command needs a signed-in --token.",
	}

	paymentsRoot.AddCommand(
		paymentsRecordCmd(),
		paymentsListCmd(),
		paymentsGetCmd(),
		paymentsResumeCmd(),
		paymentsInvoiceCmd(),
	)

	return paymentsRoot
}

func paymentsRecordCmd() *cobra.Command {
	var (
		req      apiclient.PaymentRequest
		business domain.BusinessDetails
		invType  string
	)

	cmd := &cobra.Command{
		Use:   "record <listing_id>",
		Short: "Record a successful payment for a listing",
		Args:  cobra.ExactArgs(1),
		Example: `  # Private invoice
  mrctl payments record 5f1c --amount 29.99 --currency EUR

  # Business invoice
  mrctl payments record 5f1c --amount 29.99 --invoice-type business \
    --business-name "Maardu Kinnisvara OÜ" --registry-code 12345678 \
    --business-address "Keskväljak 1, Maardu"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.PaymentInfo.ListingID = args[0]
			req.InvoiceType = domain.InvoiceType(invType)
			if req.InvoiceType == domain.InvoiceBusiness {
				req.BusinessDetails = &business
			}

			run, err := newClient().RecordPayment(cmd.Context(), &req)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), run)
			}
			return printPaymentDetail(cmd.OutOrStdout(), run)
		},
	}

	cmd.Flags().StringVar(&req.PaymentInfo.PaymentID, "payment-id", "", "gateway payment reference")
	cmd.Flags().Float64Var(&req.PaymentInfo.Amount, "amount", 0, "amount paid")
	cmd.Flags().StringVar(&req.PaymentInfo.Currency, "currency", "EUR", "currency code")
	cmd.Flags().StringVar(&req.PaymentInfo.Method, "method", "", "payment method")
	cmd.Flags().StringVar(&invType, "invoice-type", string(domain.InvoicePrivate), "invoice type (private, business)")
	cmd.Flags().StringVar(&business.Name, "business-name", "", "company name for business invoices")
	cmd.Flags().StringVar(&business.RegistryCode, "registry-code", "", "company registry code")
	cmd.Flags().StringVar(&business.Address, "business-address", "", "company address")

	return cmd
}

func paymentsListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show your payment history",
		Example: `  mrctl payments list
  mrctl payments list --limit 10 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runs, err := newClient().ListPayments(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), runs)
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No payments found.")
				return nil
			}
			return printPaymentsTable(cmd.OutOrStdout(), runs)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "number of runs (server default 50)")

	return cmd
}

func paymentsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <run_id>",
		Short: "Show a payment run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := newClient().GetPayment(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), run)
			}
			return printPaymentDetail(cmd.OutOrStdout(), run)
		},
	}
}

func paymentsResumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resume <run_id>",
		Short: "Continue a failed run from its last completed step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := newClient().ResumePayment(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), run)
			}
			return printPaymentDetail(cmd.OutOrStdout(), run)
		},
	}
}

func paymentsInvoiceCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "invoice <run_id>",
		Short: "Download the invoice for a payment run",
		Long: "Download the marketplace invoice as JSON. With --dir the file is\n" +
			"written there under the server-suggested name; otherwise it is\n" +
			"printed to stdout.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, name, err := newClient().GetInvoice(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if dir == "" {
				return outputJSON(cmd.OutOrStdout(), inv)
			}
			return saveInvoice(cmd, dir, name, inv)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "directory to save the invoice in")

	return cmd
}

func saveInvoice(cmd *cobra.Command, dir, name string, inv *domain.Invoice) error {
	if name == "" {
		name = "invoice-" + invoiceLabel(inv) + ".json"
	}
	name = filepath.Base(name)
	if name == "." || name == string(filepath.Separator) {
		return errors.New("server suggested an unusable file name")
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path) //nolint:gosec // path is under the user-chosen directory
	if err != nil {
		return fmt.Errorf("creating invoice file: %w", err)
	}
	if err := outputJSON(f, inv); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing invoice: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing invoice: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
	return nil
}
