package banking

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/elee1766/chatsamples/src/storage"
)

// Directory resolves customers and applies account changes.
type Directory struct {
	db     storage.ExecQuerier
	logger *slog.Logger
}

func NewDirectory(db storage.ExecQuerier, logger *slog.Logger) *Directory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Directory{db: db, logger: logger.With("component", "banking")}
}

// DemoAccounts are the customers the scripted conversation talks about.
func DemoAccounts() []storage.Account {
	return []storage.Account{
		{Name: "Big Bird", BankAccountNumber: "NL91SESA0417164300", Address: "123 Sesame Street", PhoneNumber: "555-0123"},
		{Name: "Oscar the Grouch", BankAccountNumber: "NL20SESA0123456789", Address: "Trash Can, 123 Sesame Street", PhoneNumber: "555-0100"},
		{Name: "Cookie Monster", BankAccountNumber: "NL39SESA0555555555", Address: "1 Cookie Jar Lane", PhoneNumber: "555-0199"},
	}
}

// Seed inserts the demo accounts into an empty directory.
func (d *Directory) Seed(ctx context.Context) error {
	count, err := storage.CountAccounts(ctx, d.db)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	accounts := DemoAccounts()
	for i := range accounts {
		if err := storage.CreateAccount(ctx, d.db, &accounts[i]); err != nil {
			return fmt.Errorf("failed to seed account %s: %w", accounts[i].Name, err)
		}
	}
	d.logger.Debug("seeded demo accounts", "count", len(accounts))
	return nil
}

// AccountSummary is what the model gets to see about a matched account.
type AccountSummary struct {
	UserAccountID     string `json:"user_account_id"`
	Name              string `json:"name"`
	BankAccountNumber string `json:"bank_account_number"`
	Address           string `json:"address"`
}

func summarize(acc storage.Account) AccountSummary {
	return AccountSummary{
		UserAccountID:     acc.ID,
		Name:              acc.Name,
		BankAccountNumber: acc.BankAccountNumber,
		Address:           acc.Address,
	}
}

// Lookup returns the accounts matching every field set in req.
func (d *Directory) Lookup(ctx context.Context, req LookupUser) ([]AccountSummary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	accounts, err := storage.FindAccounts(ctx, d.db, storage.AccountFilter{
		Name:              req.Name,
		BankAccountNumber: req.BankAccountNumber,
		Address:           req.Address,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	out := make([]AccountSummary, 0, len(accounts))
	for _, acc := range accounts {
		out = append(out, summarize(acc))
	}
	d.logger.Debug("looked up user", "matches", len(out))
	return out, nil
}

// ChangeAddress updates the address of an existing account.
func (d *Directory) ChangeAddress(ctx context.Context, req ChangeAddress) (AccountSummary, error) {
	if err := storage.UpdateAddress(ctx, d.db, req.UserAccountID, req.NewAddress); err != nil {
		return AccountSummary{}, err
	}
	d.logger.Info("changed address", "account", req.UserAccountID)
	return d.get(ctx, req.UserAccountID)
}

// ChangePhoneNumber updates the phone number of an existing account.
func (d *Directory) ChangePhoneNumber(ctx context.Context, req ChangePhoneNumber) (AccountSummary, error) {
	if err := storage.UpdatePhoneNumber(ctx, d.db, req.UserAccountID, req.NewPhoneNumber); err != nil {
		return AccountSummary{}, err
	}
	d.logger.Info("changed phone number", "account", req.UserAccountID)
	return d.get(ctx, req.UserAccountID)
}

func (d *Directory) get(ctx context.Context, id string) (AccountSummary, error) {
	acc, err := storage.GetAccount(ctx, d.db, id)
	if err != nil {
		return AccountSummary{}, err
	}
	if acc == nil {
		return AccountSummary{}, fmt.Errorf("%w: %s", storage.ErrAccountNotFound, id)
	}
	return summarize(*acc), nil
}
