package turismo

import (
	"errors"
	"fmt"

	"github.com/jengzang/turismo-backend-go/internal/models"
	"github.com/jengzang/turismo-backend-go/internal/utils"
)

// ErrUnknownSelection is returned when a selected value is not offered
var ErrUnknownSelection = errors.New("unknown selection")

// pick resolves a requested value against the dropdown options. An empty
// request selects the first option, the way a dropdown starts out.
func pick(field models.Field, requested string, options []string) (string, error) {
	if requested == "" {
		if len(options) == 0 {
			return "", nil
		}
		return options[0], nil
	}

	v, ok := utils.Resolve(requested, options)
	if !ok {
		return "", fmt.Errorf("%w: %s %q", ErrUnknownSelection, field, requested)
	}
	return v, nil
}
