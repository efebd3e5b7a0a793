package client

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	// DefaultBaseURL is the local-development backend address
	DefaultBaseURL = "http://localhost:8000"

	// backendPort is the port segment the hosted-workspace hostname is
	// rewritten to; workspaces expose services by hostname, not port number
	backendPort = "8000"

	hostedWorkspaceSuffix = ".app.daytona.io"
)

// ResolveBaseURL picks the backend base URL for a front-end running at
// location (a page URL; may be empty for CLI use). Resolution order:
//
//  1. hosted-workspace hostname rewrite: a location host of the form
//     <workspace>-<port>.app.daytona.io maps to the same workspace with the
//     port segment replaced by the backend port, preserving the scheme;
//  2. the explicit override, when non-empty;
//  3. the local-development default.
func ResolveBaseURL(location, override string) string {
	if base, ok := rewriteWorkspaceHost(location); ok {
		return base
	}
	if override != "" {
		return strings.TrimRight(override, "/")
	}
	return DefaultBaseURL
}

// rewriteWorkspaceHost applies the hosted-workspace heuristic
func rewriteWorkspaceHost(location string) (string, bool) {
	if location == "" {
		return "", false
	}

	u, err := url.Parse(location)
	if err != nil || u.Hostname() == "" {
		return "", false
	}

	host := u.Hostname()
	if !strings.HasSuffix(host, hostedWorkspaceSuffix) {
		return "", false
	}

	stem := strings.TrimSuffix(host, hostedWorkspaceSuffix)
	dash := strings.LastIndex(stem, "-")
	if dash <= 0 || !isDigits(stem[dash+1:]) {
		return "", false
	}

	scheme := u.Scheme
	if scheme == "" {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s-%s%s", scheme, stem[:dash], backendPort, hostedWorkspaceSuffix), true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
