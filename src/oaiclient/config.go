package oaiclient

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/afero"

	"github.com/elee1766/chatsamples/src/config"
)

// Config holds configuration for the client
type Config struct {
	Provider     config.ProviderConfig // Selected provider and its credentials
	HTTPClient   *http.Client          // Defaults to a client without a timeout
	Logger       *slog.Logger          // Logger for debugging
	Fs           afero.Fs              // Filesystem files are uploaded from
	PollInterval time.Duration         // How often WaitForRun checks a run
}
