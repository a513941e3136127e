// internal/gateway/hooks.go
package gateway

import (
	"net/http"

	"go.uber.org/zap"
)

// RequestHook runs before transmission and may mutate the outgoing
// request. Hooks run in registration order; a hook error aborts the send.
type RequestHook func(req *http.Request) error

// ResponseHook runs after the response body has been read, before status
// classification. Hooks run in registration order; they observe but do
// not consume the body.
type ResponseHook func(resp *http.Response, body []byte) error

// Use appends a request hook to the pipeline.
func (c *Client) Use(h RequestHook) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reqHooks = append(c.reqHooks, h)
}

// UseResponse appends a response hook to the pipeline.
func (c *Client) UseResponse(h ResponseHook) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.respHooks = append(c.respHooks, h)
}

// bearerHook enforces the credential invariant on every outgoing request:
// the Authorization header is present iff a credential is held, and its
// value always matches the held credential. The session's mirrored header
// wins over the durable slot; any caller-supplied value is overwritten.
func (c *Client) bearerHook(req *http.Request) error {
	token := c.Authorization()
	if token == "" {
		if c.creds != nil {
			stored, err := c.creds.Load()
			if err != nil {
				c.logger.Warn("failed to load stored credential", zap.Error(err))
			}
			token = stored
		}
	}

	if token == "" {
		req.Header.Del("Authorization")
		return nil
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return nil
}

// unauthorizedHook implements the forced-logout side effect for 401
// responses: clear the stored credential, drop the mirrored header,
// notify subscribers, and send the user to the login screen. The error
// itself is still propagated to the caller by classification.
func (c *Client) unauthorizedHook(resp *http.Response, _ []byte) error {
	if resp.StatusCode != http.StatusUnauthorized {
		return nil
	}

	c.logger.Info("unauthorized response, clearing session",
		zap.String("path", resp.Request.URL.Path),
	)

	if c.creds != nil {
		if err := c.creds.Clear(); err != nil {
			c.logger.Warn("failed to clear stored credential", zap.Error(err))
		}
	}
	c.ClearAuthorization()

	c.mu.RLock()
	callbacks := make([]func(), len(c.onUnauthorized))
	copy(callbacks, c.onUnauthorized)
	c.mu.RUnlock()
	for _, cb := range callbacks {
		cb()
	}

	c.navigator.Navigate(c.loginPath)
	return nil
}

// OnUnauthorized registers a callback fired whenever a request comes back
// 401. The session store uses this to drop its identity regardless of
// which operation originated the call.
func (c *Client) OnUnauthorized(cb func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = append(c.onUnauthorized, cb)
}
