package ipa

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Login authenticates against the session login endpoint and
// stores the resulting session cookie on the client. It fails
// fast on bad credentials or an unreachable server, without
// retrying.
func (c *Client) Login(ctx context.Context, username, password string) (err error) {
	form := url.Values{}
	form.Set("user", username)
	form.Set("password", password)

	loginURL := c.baseURL + "/ipa/session/login_password"
	request, err := http.NewRequestWithContext(ctx, http.MethodPost,
		loginURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("creating login request: %w", err)
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	request.Header.Set("Accept", "text/plain")
	request.Header.Set("Referer", c.baseURL+"/ipa")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAuth, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		reason := response.Header.Get("X-IPA-Rejection-Reason")
		if reason == "" {
			reason = response.Status
		}
		return fmt.Errorf("%w: %s", ErrAuth, reason)
	}

	for _, cookie := range response.Cookies() {
		if cookie.Name == "ipa_session" {
			c.session = cookie.Value
			c.logger.Debug("session established for user " + username)
			return nil
		}
	}

	return fmt.Errorf("%w: %w", ErrAuth, ErrSessionCookieMissing)
}
