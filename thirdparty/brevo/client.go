package brevo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"net/http"

	"github.com/muhammadheryan/account-service/application/notification"
	"github.com/muhammadheryan/account-service/model"
	"github.com/muhammadheryan/account-service/thirdparty/httpclient"
)

// Client sends transactional email through the Brevo API.
type Client struct {
	apiURL     string
	apiKey     string
	fromEmail  string
	fromName   string
	httpClient *httpclient.Client
}

func NewClient(apiURL, apiKey, fromEmail, fromName string, httpClient *httpclient.Client) *Client {
	return &Client{
		apiURL:     apiURL,
		apiKey:     apiKey,
		fromEmail:  fromEmail,
		fromName:   fromName,
		httpClient: httpClient,
	}
}

type sendEmailReq struct {
	Sender      map[string]string   `json:"sender"`
	To          []map[string]string `json:"to"`
	Subject     string              `json:"subject"`
	HtmlContent string              `json:"htmlContent"`
	TextContent string              `json:"textContent"`
}

// Send delivers a verification code by email.
func (c *Client) Send(ctx context.Context, msg *model.VerificationMessage) error {
	text := notification.Message(msg)
	return c.SendEmail(ctx, msg.Contact, "Your verification code", "<p>"+html.EscapeString(text)+"</p>", text)
}

func (c *Client) SendEmail(ctx context.Context, toEmail, subject, htmlContent, textContent string) error {
	if c.apiKey == "" {
		return errors.New("brevo client not configured")
	}
	if toEmail == "" {
		return errors.New("brevo: empty recipient")
	}

	body, err := json.Marshal(sendEmailReq{
		Sender:      map[string]string{"email": c.fromEmail, "name": c.fromName},
		To:          []map[string]string{{"email": toEmail}},
		Subject:     subject,
		HtmlContent: htmlContent,
		TextContent: textContent,
	})
	if err != nil {
		return fmt.Errorf("brevo: marshal request: %w", err)
	}

	err = c.httpClient.DoWithRetry(ctx, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("api-key", c.apiKey)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
	if err != nil {
		return fmt.Errorf("brevo: send email: %w", err)
	}
	return nil
}
