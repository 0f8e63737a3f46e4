package filters

import (
	"encoding/json"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/flagkit/flagkit-go/flagengine/evalcontext"
	"github.com/flagkit/flagkit-go/flagengine/utils"
)

// GroupRollout rolls a feature out to a percentage of a named group.
type GroupRollout struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

// TargetingFilter enables a feature for an explicit audience: listed users
// always match, and members of a configured group match when the hash of
// (group name, user id) falls under the group's rollout percentage. The hash
// makes group rollout sticky; there is no randomness involved.
type TargetingFilter struct {
	Users  []string
	Groups []GroupRollout
}

// NewTargetingFilter validates the audience and returns the filter.
func NewTargetingFilter(users []string, groups []GroupRollout) (TargetingFilter, error) {
	if len(users) == 0 && len(groups) == 0 {
		return TargetingFilter{}, &InvalidAudienceConfigurationError{Reason: "audience has no users and no groups"}
	}
	for _, g := range groups {
		if g.Name == "" {
			return TargetingFilter{}, &InvalidAudienceConfigurationError{Reason: "group with empty name"}
		}
		if g.Percentage < 0 || g.Percentage > 100 {
			return TargetingFilter{}, &InvalidAudienceConfigurationError{
				Reason: fmt.Sprintf("group %q rollout %v is outside [0,100]", g.Name, g.Percentage),
			}
		}
	}
	return TargetingFilter{
		Users:  slices.Clone(users),
		Groups: slices.Clone(groups),
	}, nil
}

func (f TargetingFilter) Evaluate(ec evalcontext.Context) (bool, error) {
	id := ec.Identifier()
	if id != "" && slices.Contains(f.Users, id) {
		return true, nil
	}
	if id == "" {
		// group rollout needs a stable identifier to hash
		return false, nil
	}
	memberships := ec.Groups()
	for _, g := range f.Groups {
		if !slices.Contains(memberships, g.Name) {
			continue
		}
		if utils.PercentageForKeys([]string{g.Name, id}, 1) < g.Percentage {
			return true, nil
		}
	}
	return false, nil
}

type targetingParameters struct {
	Users  []string       `json:"users"`
	Groups []GroupRollout `json:"groups"`
}

func newTargetingFilter(raw json.RawMessage) (Filter, error) {
	var p targetingParameters
	if err := decodeParameters(KindTargeting, raw, &p); err != nil {
		return nil, err
	}
	return NewTargetingFilter(p.Users, p.Groups)
}
