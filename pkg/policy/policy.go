// Package policy models the structured access-policy documents submitted
// to the analyzer. The shape matches the analyzer's input format: a version
// string plus a list of allow/deny statements over actions and resources.
package policy

import (
	"github.com/policytester/policytester/pkg/jsonutil"
)

// DefaultVersion is the policy language version the analyzer accepts.
const DefaultVersion = "2012-10-17"

// Document is one complete policy document.
type Document struct {
	Version   string      `json:"Version"`
	Statement []Statement `json:"Statement"`
}

// Statement is a single access-control statement.
type Statement struct {
	Effect   string   `json:"Effect"`
	Action   []string `json:"Action"`
	Resource Resource `json:"Resource"`
}

// Resource holds one or more resource identifiers. A single identifier
// serializes as a bare string, multiple as a list, matching the wire
// format the analyzer parses.
type Resource []string

// MarshalJSON renders a single resource as a string, multiple as an array.
func (r Resource) MarshalJSON() ([]byte, error) {
	if len(r) == 1 {
		return jsonutil.Marshal(r[0])
	}
	return jsonutil.Marshal([]string(r))
}

// UnmarshalJSON accepts either a bare string or an array of strings.
func (r *Resource) UnmarshalJSON(data []byte) error {
	var single string
	if err := jsonutil.Unmarshal(data, &single); err == nil {
		*r = Resource{single}
		return nil
	}
	var many []string
	if err := jsonutil.Unmarshal(data, &many); err != nil {
		return err
	}
	*r = Resource(many)
	return nil
}

// New returns a document with the default version wrapping the given
// statements.
func New(statements ...Statement) Document {
	return Document{Version: DefaultVersion, Statement: statements}
}

// Allow builds an allow statement over the given actions and resources.
func Allow(resource Resource, actions ...string) Statement {
	return Statement{Effect: "Allow", Action: actions, Resource: resource}
}

// Render serializes the document with two-space indentation, the form the
// analyzer ingests from disk.
func (d Document) Render() (string, error) {
	data, err := jsonutil.MarshalIndent(d, "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
