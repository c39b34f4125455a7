// Package flash implements one-shot messages carried in a short-lived cookie.
// A message added during one request is shown on the next rendered page and
// then discarded; nothing is held in server-side state.
package flash

import (
	"encoding/base64"
	"encoding/json"

	"github.com/gin-gonic/gin"
)

const (
	cookieName = "orgdesk_flash"
	cookieTTL  = 300 // seconds; flashes that are never rendered just expire

	KindError   = "error"
	KindSuccess = "success"
	KindInfo    = "info"
)

type Message struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// Add queues a message for the next rendered page.
func Add(c *gin.Context, kind, text string) {
	messages := peek(c)
	messages = append(messages, Message{Kind: kind, Text: text})
	write(c, messages)
}

// Take returns the queued messages and clears the queue.
func Take(c *gin.Context) []Message {
	messages := peek(c)
	if len(messages) > 0 {
		c.SetCookie(cookieName, "", -1, "/", "", false, true)
	}
	return messages
}

func peek(c *gin.Context) []Message {
	// Messages added earlier in this request take precedence over the
	// inbound cookie, which gin caches on first read.
	if raw, ok := c.Get(cookieName); ok {
		if messages, ok := raw.([]Message); ok {
			return messages
		}
	}

	cookie, err := c.Cookie(cookieName)
	if err != nil {
		return nil
	}
	return decode(cookie)
}

func write(c *gin.Context, messages []Message) {
	c.Set(cookieName, messages)

	payload, err := json.Marshal(messages)
	if err != nil {
		return
	}
	encoded := base64.URLEncoding.EncodeToString(payload)
	c.SetCookie(cookieName, encoded, cookieTTL, "/", "", false, true)
}

func decode(value string) []Message {
	payload, err := base64.URLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	var messages []Message
	if err := json.Unmarshal(payload, &messages); err != nil {
		return nil
	}
	return messages
}
