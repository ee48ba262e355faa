package ipa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// postJSON sends one JSON-RPC request to the session endpoint.
// The positional parameter is the zone name and the keyword
// parameters carry the record name and fields.
func (c *Client) postJSON(ctx context.Context, method, zone string,
	keywords map[string]any, jsonResultTarget any) (err error) {
	c.checkSession()

	requestBody := struct {
		Method string `json:"method"`
		Params [2]any `json:"params"`
		ID     uint   `json:"id"`
	}{
		Method: method,
		Params: [2]any{[]string{zone}, keywords},
	}

	buffer := bytes.NewBuffer(nil)
	encoder := json.NewEncoder(buffer)
	err = encoder.Encode(requestBody)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequestEncode, err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/ipa/session/json", buffer)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")
	request.Header.Set("Referer", c.baseURL+"/ipa")
	request.AddCookie(&http.Cookie{Name: "ipa_session", Value: c.session})

	c.logger.Debug("sending " + method + " for zone " + zone)
	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnsuccessfulResponse, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s", ErrBadHTTPStatus, response.Status)
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
		Error  *struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
			Name    string `json:"name"`
		} `json:"error"`
	}
	decoder := json.NewDecoder(response.Body)
	err = decoder.Decode(&envelope)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrResponseDecode, err)
	}

	if envelope.Error != nil {
		return fmt.Errorf("%w: %s: %s (code %d)", ErrAPI,
			method, envelope.Error.Message, envelope.Error.Code)
	}

	err = json.Unmarshal(envelope.Result, jsonResultTarget)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrResponseDecode, err)
	}

	return nil
}
