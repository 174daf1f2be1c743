package googleauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"turmalink/backend/config"
	"turmalink/backend/internal/service"
)

const tokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

// Verifier validates Google ID tokens against the tokeninfo endpoint.
type Verifier struct {
	clientID string
	client   *http.Client
}

// NewVerifier creates a Verifier bound to the configured OAuth client id.
func NewVerifier(cfg *config.GoogleConfig) *Verifier {
	return &Verifier{
		clientID: cfg.ClientID,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type tokenInfo struct {
	Aud        string `json:"aud"`
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
}

// Verify checks the credential and returns the identity it asserts.
func (v *Verifier) Verify(ctx context.Context, credential string) (*service.GoogleIdentity, error) {
	endpoint := tokenInfoURL + "?id_token=" + url.QueryEscape(credential)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tokeninfo request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tokeninfo returned status %d", resp.StatusCode)
	}

	var info tokenInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode tokeninfo: %w", err)
	}
	if v.clientID != "" && info.Aud != v.clientID {
		return nil, fmt.Errorf("token audience mismatch")
	}
	if info.Email == "" {
		return nil, fmt.Errorf("token carries no email")
	}

	return &service.GoogleIdentity{
		Email:      info.Email,
		FirstName:  info.GivenName,
		LastName:   info.FamilyName,
		AvatarLink: info.Picture,
	}, nil
}
