package extract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	FieldSubdomain        = "subdomain"
	FieldDomain           = "domain"
	FieldSuffix           = "suffix"
	FieldRegisteredDomain = "registered_domain"
)

// FieldNames lists the result fields in their serialization order.
// nolint:gochecknoglobals
var FieldNames = []string{FieldSubdomain, FieldDomain, FieldSuffix, FieldRegisteredDomain}

// Result holds the parts of a domain. An empty string means the part is absent.
type Result struct {
	Subdomain        string
	Domain           string
	Suffix           string
	RegisteredDomain string
}

// Values returns the fields in serialization order.
func (r Result) Values() []string {
	return []string{r.Subdomain, r.Domain, r.Suffix, r.RegisteredDomain}
}

// Field returns the value of the field named `name`.
func (r Result) Field(name string) (string, error) {
	for i, field := range FieldNames {
		if field == name {
			return r.Values()[i], nil
		}
	}

	return "", fmt.Errorf("unknown field '%s', valid fields are: %s", name, strings.Join(FieldNames, ", "))
}

func (r Result) String() string {
	parts := make([]string, 0, len(FieldNames))

	for i, value := range r.Values() {
		if len(value) == 0 {
			value = "-"
		}

		parts = append(parts, fmt.Sprintf("%s=%s", FieldNames[i], value))
	}

	return strings.Join(parts, " ")
}

// MarshalJSON implements `json.Marshaler`.
//
// Fields keep their order, and absent ones are null.
func (r Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, value := range r.Values() {
		if i > 0 {
			buf.WriteByte(',')
		}

		fmt.Fprintf(&buf, "%q:", FieldNames[i])

		if len(value) == 0 {
			buf.WriteString("null")

			continue
		}

		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}

		buf.Write(encoded)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON implements `json.Unmarshaler`.
func (r *Result) UnmarshalJSON(data []byte) error {
	var fields map[string]*string

	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	get := func(name string) string {
		if v := fields[name]; v != nil {
			return *v
		}

		return ""
	}

	*r = Result{
		Subdomain:        get(FieldSubdomain),
		Domain:           get(FieldDomain),
		Suffix:           get(FieldSuffix),
		RegisteredDomain: get(FieldRegisteredDomain),
	}

	return nil
}
