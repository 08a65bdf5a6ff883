package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"roomrental/util/httpx"
)

// Client is the single authenticated gateway to the external backend API.
// It attaches the bearer token, decodes JSON bodies, and maps HTTP
// failures onto the Kind taxonomy. It holds no business logic.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpx.Client(),
	}
}

func (c *Client) Get(ctx context.Context, token, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, token, path, query, nil, "", out)
}

func (c *Client) PostJSON(ctx context.Context, token, path string, body, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, token, path, nil, bytes.NewReader(b), "application/json", out)
}

func (c *Client) PatchJSON(ctx context.Context, token, path string, body, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPatch, token, path, nil, bytes.NewReader(b), "application/json", out)
}

// PatchMultipart uploads a single file part plus plain fields, used for
// the payment-proof image.
func (c *Client) PatchMultipart(ctx context.Context, token, path, fileField, filename string, file io.Reader, fields map[string]string, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return err
		}
	}
	fw, err := w.CreateFormFile(fileField, filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(fw, file); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPatch, token, path, nil, &buf, w.FormDataContentType(), out)
}

func (c *Client) do(ctx context.Context, method, token, path string, query url.Values, body io.Reader, contentType string, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: "could not reach server"}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: "could not reach server"}
	}

	if resp.StatusCode >= 300 {
		return classify(resp.StatusCode, backendMessage(raw))
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Kind: KindServer, Message: "something went wrong, try again later"}
	}
	return nil
}

// backendMessage pulls the human-readable message the backend puts in
// error bodies, under either of the field names it has used.
func backendMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}
