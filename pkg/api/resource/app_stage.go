package resource

import (
	"fmt"
)

// AppStageInput is the GraphQL input for creating and renaming apps and stages
type AppStageInput struct {
	Name string
}

// ValidateAppStage returns the name carried by the input
func ValidateAppStage(r *AppStageInput) (name string, err error) {
	if r == nil {
		return "", fmt.Errorf("input is required")
	}

	return r.Name, nil
}
