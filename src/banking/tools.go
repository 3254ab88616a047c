package banking

import (
	"context"
	"log/slog"

	"github.com/elee1766/chatsamples/src/toolbox"
)

// LookupResult is the LookupUser tool output.
type LookupResult struct {
	Accounts               []AccountSummary `json:"accounts"`
	RequestMoreInformation string           `json:"request_more_information,omitempty"`
}

// ChangeResult is the output of the account changing tools.
type ChangeResult struct {
	Status  string         `json:"status"`
	Account AccountSummary `json:"account"`
}

// InformationRequest is the RequestMoreInformation tool output. The question
// is relayed to the user by whoever drives the conversation.
type InformationRequest struct {
	Information string `json:"information"`
	Status      string `json:"status"`
}

// NewToolbox returns the four banking tools in the order the model is offered them.
func NewToolbox(dir *Directory, logger *slog.Logger) (*toolbox.Toolbox, error) {
	changeAddress, err := toolbox.NewTool(ChangeAddressDescription,
		func(ctx context.Context, in ChangeAddress) (ChangeResult, error) {
			acc, err := dir.ChangeAddress(ctx, in)
			if err != nil {
				return ChangeResult{}, err
			}
			return ChangeResult{Status: "updated", Account: acc}, nil
		})
	if err != nil {
		return nil, err
	}

	changePhone, err := toolbox.NewTool(ChangePhoneNumberDescription,
		func(ctx context.Context, in ChangePhoneNumber) (ChangeResult, error) {
			acc, err := dir.ChangePhoneNumber(ctx, in)
			if err != nil {
				return ChangeResult{}, err
			}
			return ChangeResult{Status: "updated", Account: acc}, nil
		})
	if err != nil {
		return nil, err
	}

	lookup, err := toolbox.NewTool(LookupUserDescription,
		func(ctx context.Context, in LookupUser) (LookupResult, error) {
			accounts, err := dir.Lookup(ctx, in)
			if err != nil {
				return LookupResult{}, err
			}
			return LookupResult{Accounts: accounts, RequestMoreInformation: in.RequestMoreInformation}, nil
		})
	if err != nil {
		return nil, err
	}

	requestInfo, err := toolbox.NewTool(RequestMoreInformationDescription,
		func(_ context.Context, in RequestMoreInformation) (InformationRequest, error) {
			return InformationRequest{Information: in.Information, Status: "asked"}, nil
		})
	if err != nil {
		return nil, err
	}

	tb := toolbox.New()
	if err := tb.Register(changeAddress, changePhone, lookup, requestInfo); err != nil {
		return nil, err
	}
	tb.Use(toolbox.LoggingMiddleware(logger))
	return tb, nil
}
