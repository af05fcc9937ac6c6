package api

import (
	"net/url"
	"strconv"
	"strings"
)

// Param is one query parameter.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered list of query parameters. Encode keeps insertion
// order, unlike url.Values.
type Params []Param

// Add returns p with key=value appended.
func (p Params) Add(key, value string) Params {
	return append(p, Param{Key: key, Value: value})
}

// AddInt returns p with key=value appended.
func (p Params) AddInt(key string, value int) Params {
	return p.Add(key, strconv.Itoa(value))
}

// AddIfSet appends key=value only when value is non-blank.
func (p Params) AddIfSet(key, value string) Params {
	if strings.TrimSpace(value) == "" {
		return p
	}
	return p.Add(key, value)
}

// Encode renders p as a query string without the leading "?".
func (p Params) Encode() string {
	if len(p) == 0 {
		return ""
	}
	var b strings.Builder
	for i, param := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(param.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(param.Value))
	}
	return b.String()
}

func buildURL(baseURL, endpoint string, params Params) string {
	target := strings.TrimRight(baseURL, "/") + endpoint
	query := params.Encode()
	if query == "" {
		return target
	}
	if strings.Contains(endpoint, "?") {
		return target + "&" + query
	}
	return target + "?" + query
}
