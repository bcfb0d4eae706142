package twilio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/muhammadheryan/account-service/application/notification"
	"github.com/muhammadheryan/account-service/model"
	"github.com/muhammadheryan/account-service/thirdparty/httpclient"
)

// Client sends SMS through the Twilio Messages API.
type Client struct {
	apiURL     string
	accountSID string
	authToken  string
	fromNumber string
	httpClient *httpclient.Client
}

func NewClient(apiURL, accountSID, authToken, fromNumber string, httpClient *httpclient.Client) *Client {
	return &Client{
		apiURL:     strings.TrimRight(apiURL, "/"),
		accountSID: accountSID,
		authToken:  authToken,
		fromNumber: fromNumber,
		httpClient: httpClient,
	}
}

// Send delivers a verification code by SMS.
func (c *Client) Send(ctx context.Context, msg *model.VerificationMessage) error {
	return c.SendSMS(ctx, msg.Contact, notification.Message(msg))
}

func (c *Client) SendSMS(ctx context.Context, toPhoneNumber, message string) error {
	if c.accountSID == "" || c.authToken == "" {
		return errors.New("twilio client not configured")
	}

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", c.apiURL, c.accountSID)
	data := url.Values{}
	data.Set("To", toPhoneNumber)
	data.Set("From", c.fromNumber)
	data.Set("Body", message)
	encoded := data.Encode()

	err := c.httpClient.DoWithRetry(ctx, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(encoded))
		if err != nil {
			return nil, err
		}
		req.SetBasicAuth(c.accountSID, c.authToken)
		req.Header.Set("Accept", "application/json")
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return req, nil
	})
	if err != nil {
		return fmt.Errorf("twilio: send sms: %w", err)
	}
	return nil
}
