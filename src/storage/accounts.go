package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/google/uuid"
)

// ErrAccountNotFound is returned by account updates that match no row.
var ErrAccountNotFound = errors.New("account not found")

// AccountFilter narrows FindAccounts. Empty fields are ignored; set fields
// are combined with AND. Name and address match case-insensitively.
type AccountFilter struct {
	Name              string
	BankAccountNumber string
	Address           string
}

func (f AccountFilter) IsEmpty() bool {
	return f.Name == "" && f.BankAccountNumber == "" && f.Address == ""
}

// CreateAccount inserts a new account
func CreateAccount(ctx context.Context, db Execer, account *Account) error {
	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	if account.UpdatedAt.IsZero() {
		account.UpdatedAt = time.Now()
	}

	query := `INSERT INTO accounts (id, name, bank_account_number, address, phone_number, updated_at) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := db.ExecContext(ctx, query, account.ID, account.Name, account.BankAccountNumber, account.Address, account.PhoneNumber, account.UpdatedAt)
	return err
}

// GetAccount retrieves an account by its ID
func GetAccount(ctx context.Context, db sqlscan.Querier, accountID string) (*Account, error) {
	query := `SELECT id, name, bank_account_number, address, phone_number, updated_at FROM accounts WHERE id = ?`
	var account Account
	err := sqlscan.Get(ctx, db, &account, query, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, err
	}
	return &account, nil
}

// FindAccounts returns accounts matching every set field of filter. An empty
// filter matches nothing.
func FindAccounts(ctx context.Context, db sqlscan.Querier, filter AccountFilter) ([]Account, error) {
	if filter.IsEmpty() {
		return nil, nil
	}

	var (
		where []string
		args  []any
	)
	if filter.Name != "" {
		where = append(where, "name = ? COLLATE NOCASE")
		args = append(args, strings.TrimSpace(filter.Name))
	}
	if filter.BankAccountNumber != "" {
		where = append(where, "bank_account_number = ?")
		args = append(args, strings.TrimSpace(filter.BankAccountNumber))
	}
	if filter.Address != "" {
		where = append(where, "address = ? COLLATE NOCASE")
		args = append(args, strings.TrimSpace(filter.Address))
	}

	query := `SELECT id, name, bank_account_number, address, phone_number, updated_at FROM accounts WHERE ` +
		strings.Join(where, " AND ") + ` ORDER BY name, id`
	var accounts []Account
	if err := sqlscan.Select(ctx, db, &accounts, query, args...); err != nil {
		return nil, err
	}
	return accounts, nil
}

// UpdateAddress sets the address of an account
func UpdateAddress(ctx context.Context, db Execer, accountID, address string) error {
	return updateAccountField(ctx, db, "address", accountID, address)
}

// UpdatePhoneNumber sets the phone number of an account
func UpdatePhoneNumber(ctx context.Context, db Execer, accountID, phoneNumber string) error {
	return updateAccountField(ctx, db, "phone_number", accountID, phoneNumber)
}

// column is always one of the literals above, never caller input.
func updateAccountField(ctx context.Context, db Execer, column, accountID, value string) error {
	query := fmt.Sprintf(`UPDATE accounts SET %s = ?, updated_at = ? WHERE id = ?`, column)
	res, err := db.ExecContext(ctx, query, value, time.Now(), accountID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, accountID)
	}
	return nil
}

// CountAccounts returns the number of stored accounts
func CountAccounts(ctx context.Context, db sqlscan.Querier) (int, error) {
	var count int
	if err := sqlscan.Get(ctx, db, &count, `SELECT COUNT(*) FROM accounts`); err != nil {
		return 0, err
	}
	return count, nil
}
