package tools

import (
	"encoding/json"
	"fmt"
)

// decodeInput maps raw function call arguments onto a typed input struct.
func decodeInput(input map[string]interface{}, out interface{}) error {
	inputBytes, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("failed to marshal input: %w", err)
	}
	if err := json.Unmarshal(inputBytes, out); err != nil {
		return fmt.Errorf("failed to parse input: %w", err)
	}
	return nil
}
