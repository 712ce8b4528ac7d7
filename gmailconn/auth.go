// SPDX-License-Identifier: GPL-3.0-or-later
package gmailconn

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmail "google.golang.org/api/gmail/v1"
)

// Authorize runs the interactive OAuth consent flow and caches the resulting
// token. It only needs to be run once per token file.
func Authorize(credentialsFile, tokenFile string) error {
	credentials, err := os.ReadFile(credentialsFile)
	if err != nil {
		return fmt.Errorf("could not read credentials file: %w", err)
	}

	oauthConfig, err := google.ConfigFromJSON(credentials, gmail.GmailModifyScope)
	if err != nil {
		return fmt.Errorf("could not parse credentials file: %w", err)
	}

	url := oauthConfig.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Open the following link in your browser, then paste the authorization code:\n%v\n> ", url)

	var code string
	_, err = fmt.Scan(&code)
	if err != nil {
		return fmt.Errorf("could not read authorization code: %w", err)
	}

	token, err := oauthConfig.Exchange(context.Background(), code)
	if err != nil {
		return fmt.Errorf("could not exchange authorization code: %w", err)
	}

	err = saveToken(tokenFile, token)
	if err != nil {
		return err
	}

	fmt.Printf("Token cached in %s\n", tokenFile)
	return nil
}

func tokenFromFile(filename string) (*oauth2.Token, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open token file: %w", err)
	}
	defer f.Close()

	token := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(token)
	if err != nil {
		return nil, fmt.Errorf("could not decode token file: %w", err)
	}

	return token, nil
}

func saveToken(filename string, token *oauth2.Token) error {
	f, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("could not create token file: %w", err)
	}
	defer f.Close()

	err = json.NewEncoder(f).Encode(token)
	if err != nil {
		return fmt.Errorf("could not write token file: %w", err)
	}

	return nil
}
