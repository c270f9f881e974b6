package services

import (
	"errors"
	"fmt"
	"log"
	"reflect"
	"strings"

	"resto/internal/errs"
	"resto/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// EventPublisher publishes domain events after a change is committed.
type EventPublisher interface {
	Publish(routingKey string, payload map[string]interface{}) error
}

// NewValidator returns a validator reporting fields by their json name so
// messages match the request keys.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationError turns a validator failure into a ValidationFailed error
// carrying the first reported message.
func ValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		e := verrs[0]
		return errs.New(errs.ValidationFailed, fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag()))
	}
	return errs.Wrap(errs.ValidationFailed, "Invalid request", err)
}

// lookupError classifies a repository read failure.
func lookupError(err error, notFoundMessage string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return errs.Wrap(errs.NotFound, notFoundMessage, err)
	}
	return err
}

func publish(events EventPublisher, routingKey string, payload map[string]interface{}) {
	if events == nil {
		return
	}
	if err := events.Publish(routingKey, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}
