package flagkit

import (
	"fmt"
	"strings"

	"github.com/flagkit/flagkit-go/flagengine"
	"github.com/flagkit/flagkit-go/flagengine/filters"
	"github.com/flagkit/flagkit-go/flagengine/flags"
)

// The engine's typed errors, re-exported so callers only need this package.
type (
	UnknownFlagError                  = flagengine.UnknownFlagError
	DuplicateFlagError                = flagengine.DuplicateFlagError
	UnknownFilterKindError            = filters.UnknownFilterKindError
	DuplicateFilterKindError          = filters.DuplicateFilterKindError
	FilterParameterError              = filters.FilterParameterError
	InvalidTimeWindowError            = filters.InvalidTimeWindowError
	InvalidPercentageThresholdError   = filters.InvalidPercentageThresholdError
	InvalidAudienceConfigurationError = filters.InvalidAudienceConfigurationError
	InvalidConfigurationError         = flags.InvalidConfigurationError
)

// SchemaValidationError reports why a configuration document was rejected by
// the configuration schema.
type SchemaValidationError struct {
	Problems []string
}

func (e *SchemaValidationError) Error() string {
	return fmt.Sprintf("configuration document is invalid: %s", strings.Join(e.Problems, "; "))
}
