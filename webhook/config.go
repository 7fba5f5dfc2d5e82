package webhook

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultTimeout bounds a single Send when Config.Timeout is zero.
const DefaultTimeout = 10 * time.Second

// DefaultUserAgent is sent when Config.UserAgent is empty.
const DefaultUserAgent = "chatcard/1.0"

// Config configures a Client.
type Config struct {
	// URL is the incoming webhook address of the chat space.
	URL string `validate:"required,http_url"`
	// Timeout bounds each request including reading the response.
	Timeout time.Duration `validate:"gte=0"`
	// UserAgent overrides DefaultUserAgent.
	UserAgent string `validate:"omitempty,max=200"`
}

var (
	validate *validator.Validate
	once     sync.Once
)

func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
	})
	return validate
}

// Validate reports the first invalid field of c.
func (c Config) Validate() error {
	err := getValidator().Struct(c)
	if err == nil {
		return nil
	}
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		e := verrs[0]
		return fmt.Errorf("webhook: invalid config: field %s failed on the %q tag", e.Field(), e.Tag())
	}
	return fmt.Errorf("webhook: invalid config: %w", err)
}

func (c Config) withDefaults() Config {
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	return c
}
