package google

import (
	"context"
	"errors"

	"golang.org/x/oauth2"
	googleauth "golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// Credentials holds the non-interactive authentication material for a
// batch run. Either CredentialsFile (a service-account key) or the
// client-id/secret/refresh-token triple must be set.
type Credentials struct {
	CredentialsFile string
	ClientID        string
	ClientSecret    string
	RefreshToken    string
}

// ErrNoCredentials indicates neither auth mode is configured.
var ErrNoCredentials = errors.New("google: no credentials configured")

// NewDriveService creates a Google Drive API service for the given
// credentials. Token refresh is handled by the returned service's token
// source; nothing interactive happens at any point.
func NewDriveService(ctx context.Context, creds Credentials) (*drive.Service, error) {
	if creds.CredentialsFile != "" {
		return drive.NewService(ctx,
			option.WithCredentialsFile(creds.CredentialsFile),
			option.WithScopes(drive.DriveScope),
		)
	}

	if creds.RefreshToken == "" {
		return nil, ErrNoCredentials
	}

	conf := &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Endpoint:     googleauth.Endpoint,
		Scopes:       []string{drive.DriveScope},
	}
	ts := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: creds.RefreshToken})
	return drive.NewService(ctx, option.WithTokenSource(ts))
}
