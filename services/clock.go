package services

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"
)

// Clock prefers a network time service and falls back to the local clock
// when the call fails or times out.
type Clock struct {
	apiURL string
	client *http.Client
}

func NewClock(apiURL string, timeout time.Duration) *Clock {
	return &Clock{
		apiURL: apiURL,
		client: &http.Client{Timeout: timeout},
	}
}

func (c *Clock) Now() time.Time {
	if c == nil || c.apiURL == "" {
		return time.Now()
	}

	res, err := c.client.Get(c.apiURL)
	if err != nil {
		log.Println("network time unavailable, using local clock:", err)
		return time.Now()
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		log.Println("network time unavailable, using local clock: status", res.StatusCode)
		return time.Now()
	}

	// {"data":{"t":"<unix millis>"}}
	var body struct {
		Data struct {
			T string `json:"t"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		log.Println("network time unavailable, using local clock:", err)
		return time.Now()
	}
	ms, err := strconv.ParseInt(body.Data.T, 10, 64)
	if err != nil {
		log.Println("network time unavailable, using local clock:", err)
		return time.Now()
	}
	return time.UnixMilli(ms)
}

// Timestamp formats Now for order numbers, to the second.
func (c *Clock) Timestamp() string {
	return c.Now().Format("20060102150405")
}
