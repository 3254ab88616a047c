package banking

import "errors"

// ErrNoLookupKey is returned when LookupUser is called without any field to search on.
var ErrNoLookupKey = errors.New("must specify at least one of name, bank_account_number, or address")

// ChangeAddress changes the address for a user account.
type ChangeAddress struct {
	UserAccountID string `json:"user_account_id" description:"The user account ID" required:"true"`
	NewAddress    string `json:"new_address" description:"The new address for this user" required:"true"`
}

// ChangePhoneNumber changes the phone number for a user account.
type ChangePhoneNumber struct {
	UserAccountID  string `json:"user_account_id" description:"The user account ID" required:"true"`
	NewPhoneNumber string `json:"new_phone_number" description:"The new phone number for this user" required:"true"`
}

// LookupUser resolves a user by name, bank account number, or address.
type LookupUser struct {
	Name                   string `json:"name,omitempty" description:"The name of the user to look up"`
	BankAccountNumber      string `json:"bank_account_number,omitempty" description:"The bank account number of the user to look up"`
	Address                string `json:"address,omitempty" description:"The address of the user to look up"`
	RequestMoreInformation string `json:"request_more_information,omitempty" description:"If you don't have all the information you need to look up the user, you can ask the user to provide more information here"`
}

// Validate requires at least one of the lookup keys.
func (l LookupUser) Validate() error {
	if l.Name == "" && l.BankAccountNumber == "" && l.Address == "" {
		return ErrNoLookupKey
	}
	return nil
}

// RequestMoreInformation is emitted when the model wants to ask the user something.
type RequestMoreInformation struct {
	Information string `json:"information" description:"The information that the LLM wants to gather from the user" required:"true"`
}

// Tool descriptions, as the model reads them.
const (
	ChangeAddressDescription = `Changes the address for a user account.

Before calling this function, you must have looked up the user account ID by calling the LookupUser function, or the user must be asked to provide the user account ID themselves. Also you must have asked the user to provide the new address.`

	ChangePhoneNumberDescription = `Changes the phone number for a user account.

Before calling this function, you must have looked up the user account ID by calling the LookupUser function, or the user must be asked to provide the user account ID themselves. Also you must have asked the user to provide the new phone number.`

	LookupUserDescription = `Resolves a user by name, bank account number, or address.

When calling this function, you must know or ask the user to provide at least one of the following:
- The name of the user
- The bank account number of the user
- The address of the user

If you don't know the user's name, bank account number, or address, you should ask the user to provide one of these using the optional 'request_more_information' field.`

	RequestMoreInformationDescription = `Requests more information from the user.

When the LLM wants to call this function, it will emit a JSON containing the information that it wants to know.`
)
