package convert

import "encoding/json"

// EncodePretty serializes a translated JSON value with two-space indentation
// and reports the output size. Object keys are emitted in encoding/json's
// sorted order, so the output is deterministic.
func EncodePretty(v interface{}, reporter Reporter) ([]byte, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	reporter.OutputBytes(len(b))
	return b, nil
}
