// Package cli implements the interactive menu over the ledger services. It
// collects line-based input, invokes one service operation per choice and
// renders the result as text. Validation failures are reported and the menu
// redisplays; storage failures abort the loop.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/arvindkm/bankledger/internal/apperrors"
	"github.com/arvindkm/bankledger/internal/core/domain"
	portssvc "github.com/arvindkm/bankledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type Shell struct {
	in        *bufio.Scanner
	out       io.Writer
	customers portssvc.CustomerService
	accounts  portssvc.AccountService
	ledger    portssvc.LedgerService
}

func New(in io.Reader, out io.Writer, customers portssvc.CustomerService, accounts portssvc.AccountService, ledger portssvc.LedgerService) *Shell {
	return &Shell{
		in:        bufio.NewScanner(in),
		out:       out,
		customers: customers,
		accounts:  accounts,
		ledger:    ledger,
	}
}

// Run loops over the main menu until the user exits or input ends. It returns
// nil on a clean exit and the underlying error on a storage failure.
func (s *Shell) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "--- Bank Account Management ---")
		fmt.Fprintln(s.out, "1. Manage Customers")
		fmt.Fprintln(s.out, "2. Manage Accounts")
		fmt.Fprintln(s.out, "3. Transactions (Deposit/Withdraw/Transfer)")
		fmt.Fprintln(s.out, "4. Transaction History / Monthly Statement")
		fmt.Fprintln(s.out, "5. Search Accounts")
		fmt.Fprintln(s.out, "6. Exit")

		choice, err := s.prompt("Enter your choice: ")
		if err != nil {
			return finishOnEOF(err)
		}

		var opErr error
		switch choice {
		case "1":
			opErr = s.customerMenu(ctx)
		case "2":
			opErr = s.accountMenu(ctx)
		case "3":
			opErr = s.transactionMenu(ctx)
		case "4":
			opErr = s.reportMenu(ctx)
		case "5":
			opErr = s.searchAccounts(ctx)
		case "6":
			fmt.Fprintln(s.out, "Exiting...")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Try again!")
		}
		if opErr != nil {
			return finishOnEOF(opErr)
		}
	}
}

func finishOnEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Shell) promptAmount(label string) (decimal.Decimal, error) {
	raw, err := s.prompt(label)
	if err != nil {
		return decimal.Zero, err
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("not a number %q: %w", raw, apperrors.ErrInvalidAmount)
	}
	return amount, nil
}

// report prints recoverable validation failures and swallows them so the menu
// redisplays. Anything else is a storage failure and propagates to Run.
func (s *Shell) report(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrInvalidAmount),
		errors.Is(err, apperrors.ErrInsufficientFunds):
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return nil
	case errors.Is(err, io.EOF):
		return err
	default:
		return err
	}
}

func (s *Shell) customerMenu(ctx context.Context) error {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "--- Customers ---")
	fmt.Fprintln(s.out, "a. Add Customer")
	fmt.Fprintln(s.out, "b. View Customers")
	fmt.Fprintln(s.out, "c. Update Customer")
	fmt.Fprintln(s.out, "d. Delete Customer")

	choice, err := s.prompt("Choice: ")
	if err != nil {
		return err
	}

	switch choice {
	case "a":
		return s.addCustomer(ctx)
	case "b":
		return s.viewCustomers(ctx)
	case "c":
		return s.updateCustomer(ctx)
	case "d":
		return s.deleteCustomer(ctx)
	default:
		fmt.Fprintln(s.out, "Invalid choice. Try again!")
		return nil
	}
}

func (s *Shell) addCustomer(ctx context.Context) error {
	name, err := s.prompt("Enter Customer Name: ")
	if err != nil {
		return err
	}
	email, err := s.prompt("Enter Email: ")
	if err != nil {
		return err
	}
	phone, err := s.prompt("Enter Phone: ")
	if err != nil {
		return err
	}

	customer, err := s.customers.CreateCustomer(ctx, name, email, phone)
	if err != nil {
		return s.report(err)
	}
	fmt.Fprintf(s.out, "Customer added (ID: %s)\n", customer.CustomerID)
	return nil
}

func (s *Shell) viewCustomers(ctx context.Context) error {
	customers, err := s.customers.ListCustomers(ctx)
	if err != nil {
		return s.report(err)
	}
	s.renderCustomers(customers)
	return nil
}

func (s *Shell) updateCustomer(ctx context.Context) error {
	if err := s.viewCustomers(ctx); err != nil {
		return err
	}
	customerID, err := s.prompt("Enter Customer ID to update: ")
	if err != nil {
		return err
	}
	name, err := s.prompt("Enter New Name: ")
	if err != nil {
		return err
	}
	email, err := s.prompt("Enter New Email: ")
	if err != nil {
		return err
	}
	phone, err := s.prompt("Enter New Phone: ")
	if err != nil {
		return err
	}

	if err := s.customers.UpdateCustomer(ctx, customerID, name, email, phone); err != nil {
		return s.report(err)
	}
	fmt.Fprintln(s.out, "Customer updated")
	return nil
}

func (s *Shell) deleteCustomer(ctx context.Context) error {
	if err := s.viewCustomers(ctx); err != nil {
		return err
	}
	customerID, err := s.prompt("Enter Customer ID to delete: ")
	if err != nil {
		return err
	}

	if err := s.customers.DeleteCustomer(ctx, customerID); err != nil {
		return s.report(err)
	}
	fmt.Fprintln(s.out, "Customer deleted")
	return nil
}

func (s *Shell) accountMenu(ctx context.Context) error {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "--- Accounts ---")
	fmt.Fprintln(s.out, "a. Open Account")
	fmt.Fprintln(s.out, "b. View Accounts")
	fmt.Fprintln(s.out, "c. Close Account")
	fmt.Fprintln(s.out, "d. Check Balance")

	choice, err := s.prompt("Choice: ")
	if err != nil {
		return err
	}

	switch choice {
	case "a":
		return s.openAccount(ctx)
	case "b":
		return s.viewAccounts(ctx)
	case "c":
		return s.closeAccount(ctx)
	case "d":
		return s.checkBalance(ctx)
	default:
		fmt.Fprintln(s.out, "Invalid choice. Try again!")
		return nil
	}
}

func (s *Shell) openAccount(ctx context.Context) error {
	if err := s.viewCustomers(ctx); err != nil {
		return err
	}
	customerID, err := s.prompt("Enter Customer ID for new account: ")
	if err != nil {
		return err
	}
	accountType, err := s.prompt("Enter Account Type (Savings/Current): ")
	if err != nil {
		return err
	}

	account, err := s.accounts.OpenAccount(ctx, customerID, domain.AccountType(accountType))
	if err != nil {
		return s.report(err)
	}
	fmt.Fprintf(s.out, "Account opened (ID: %s)\n", account.AccountID)
	return nil
}

func (s *Shell) viewAccounts(ctx context.Context) error {
	summaries, err := s.accounts.ListAccounts(ctx)
	if err != nil {
		return s.report(err)
	}
	s.renderSummaries(summaries)
	return nil
}

func (s *Shell) closeAccount(ctx context.Context) error {
	if err := s.viewAccounts(ctx); err != nil {
		return err
	}
	accountID, err := s.prompt("Enter Account ID to close: ")
	if err != nil {
		return err
	}

	if err := s.accounts.CloseAccount(ctx, accountID); err != nil {
		return s.report(err)
	}
	fmt.Fprintln(s.out, "Account closed")
	return nil
}

func (s *Shell) checkBalance(ctx context.Context) error {
	accountID, err := s.prompt("Enter Account ID: ")
	if err != nil {
		return err
	}

	balance, err := s.accounts.GetBalance(ctx, accountID)
	if err != nil {
		return s.report(err)
	}
	fmt.Fprintf(s.out, "Current Balance: %s\n", balance)
	return nil
}

func (s *Shell) transactionMenu(ctx context.Context) error {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "--- Transactions ---")
	fmt.Fprintln(s.out, "a. Deposit")
	fmt.Fprintln(s.out, "b. Withdraw")
	fmt.Fprintln(s.out, "c. Transfer")

	choice, err := s.prompt("Choice: ")
	if err != nil {
		return err
	}

	switch choice {
	case "a":
		return s.deposit(ctx)
	case "b":
		return s.withdraw(ctx)
	case "c":
		return s.transfer(ctx)
	default:
		fmt.Fprintln(s.out, "Invalid choice. Try again!")
		return nil
	}
}

func (s *Shell) deposit(ctx context.Context) error {
	accountID, err := s.prompt("Enter Account ID to deposit into: ")
	if err != nil {
		return err
	}
	amount, err := s.promptAmount("Enter Amount: ")
	if err != nil {
		return s.report(err)
	}

	if err := s.ledger.Deposit(ctx, accountID, amount); err != nil {
		return s.report(err)
	}
	fmt.Fprintln(s.out, "Deposit successful")
	return nil
}

func (s *Shell) withdraw(ctx context.Context) error {
	accountID, err := s.prompt("Enter Account ID to withdraw from: ")
	if err != nil {
		return err
	}
	amount, err := s.promptAmount("Enter Amount: ")
	if err != nil {
		return s.report(err)
	}

	if err := s.ledger.Withdraw(ctx, accountID, amount); err != nil {
		return s.report(err)
	}
	fmt.Fprintln(s.out, "Withdrawal successful")
	return nil
}

func (s *Shell) transfer(ctx context.Context) error {
	fromAccountID, err := s.prompt("Enter Sender Account ID: ")
	if err != nil {
		return err
	}
	toAccountID, err := s.prompt("Enter Receiver Account ID: ")
	if err != nil {
		return err
	}
	amount, err := s.promptAmount("Enter Amount: ")
	if err != nil {
		return s.report(err)
	}

	if err := s.ledger.Transfer(ctx, fromAccountID, toAccountID, amount); err != nil {
		return s.report(err)
	}
	fmt.Fprintln(s.out, "Transfer successful")
	return nil
}

func (s *Shell) reportMenu(ctx context.Context) error {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "--- Transaction Reports ---")
	fmt.Fprintln(s.out, "a. Transaction History")
	fmt.Fprintln(s.out, "b. Monthly Statement")

	choice, err := s.prompt("Choice: ")
	if err != nil {
		return err
	}

	switch choice {
	case "a":
		return s.transactionHistory(ctx)
	case "b":
		return s.monthlyStatement(ctx)
	default:
		fmt.Fprintln(s.out, "Invalid choice. Try again!")
		return nil
	}
}

func (s *Shell) transactionHistory(ctx context.Context) error {
	accountID, err := s.prompt("Enter Account ID to view transactions: ")
	if err != nil {
		return err
	}

	transactions, err := s.ledger.TransactionHistory(ctx, accountID)
	if err != nil {
		return s.report(err)
	}
	s.renderTransactions(transactions)
	return nil
}

func (s *Shell) monthlyStatement(ctx context.Context) error {
	accountID, err := s.prompt("Enter Account ID for statement: ")
	if err != nil {
		return err
	}
	month, err := s.prompt("Enter Month (YYYY-MM): ")
	if err != nil {
		return err
	}

	transactions, err := s.ledger.MonthlyStatement(ctx, accountID, month)
	if err != nil {
		return s.report(err)
	}
	s.renderTransactions(transactions)
	return nil
}

func (s *Shell) searchAccounts(ctx context.Context) error {
	name, err := s.prompt("Enter Customer Name to search accounts: ")
	if err != nil {
		return err
	}

	summaries, err := s.accounts.SearchAccountsByCustomerName(ctx, name)
	if err != nil {
		return s.report(err)
	}
	s.renderSummaries(summaries)
	return nil
}

func (s *Shell) renderCustomers(customers []domain.Customer) {
	if len(customers) == 0 {
		fmt.Fprintln(s.out, "No customers found.")
		return
	}
	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CUSTOMER ID\tNAME\tEMAIL\tPHONE")
	for _, c := range customers {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.CustomerID, c.Name, c.Email, c.Phone)
	}
	w.Flush()
}

func (s *Shell) renderSummaries(summaries []domain.AccountSummary) {
	if len(summaries) == 0 {
		fmt.Fprintln(s.out, "No accounts found.")
		return
	}
	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ACCOUNT ID\tCUSTOMER\tTYPE\tBALANCE\tOPENED")
	for _, a := range summaries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			a.AccountID, a.CustomerName, a.AccountType, a.Balance, a.CreatedDate.Format("2006-01-02"))
	}
	w.Flush()
}

func (s *Shell) renderTransactions(transactions []domain.Transaction) {
	if len(transactions) == 0 {
		fmt.Fprintln(s.out, "No transactions found.")
		return
	}
	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tTYPE\tAMOUNT\tBALANCE\tDESCRIPTION")
	for _, t := range transactions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			t.OccurredAt.Format("2006-01-02 15:04:05"), t.Type, t.Amount, t.RunningBalance, t.Description)
	}
	w.Flush()
}
