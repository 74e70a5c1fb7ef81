// Copyright (c) 2025 The recbrowse Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"

	apperrors "recbrowse/cli/internal/errors"

	"github.com/pterm/pterm"
)

// PresentError formats an error for user display with masking.
func PresentError(context string, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", context, Mask(err.Error()))
}

// ErrorClass is the user-facing category of a startup failure.
type ErrorClass int

const (
	ClassUnknown ErrorClass = iota
	ClassConfigMissing
	ClassConfigUnreadable
	ClassTimeout
	ClassDNS
	ClassRefused
	ClassAuth
	ClassTLS
	ClassInvalidTable
	ClassQuery
)

// Classify inspects err's kind and cause to pick a category.
func Classify(err error) ErrorClass {
	if err == nil {
		return ClassUnknown
	}
	switch apperrors.KindOf(err) {
	case apperrors.ConfigNotFound:
		return ClassConfigMissing
	case apperrors.ConfigUnreadable:
		return ClassConfigUnreadable
	case apperrors.InvalidTable:
		return ClassInvalidTable
	}

	lower := strings.ToLower(err.Error())
	var netErr net.Error
	var dnsErr *net.DNSError
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout(),
		strings.Contains(lower, "timeout"):
		return ClassTimeout
	case errors.As(err, &dnsErr), strings.Contains(lower, "no such host"):
		return ClassDNS
	case errors.Is(err, syscall.ECONNREFUSED), strings.Contains(lower, "connection refused"):
		return ClassRefused
	case strings.Contains(lower, "password authentication failed"),
		strings.Contains(lower, "access denied"),
		strings.Contains(lower, "28p01"):
		return ClassAuth
	case strings.Contains(lower, "tls"), strings.Contains(lower, "certificate"):
		return ClassTLS
	}

	if apperrors.Is(err, apperrors.FetchFailed) {
		return ClassQuery
	}
	return ClassUnknown
}

// DefaultErrorTitle heads errors that have no command-specific title.
const DefaultErrorTitle = "recbrowse failed"

// FormatError renders err under title with hints. An empty title means
// DefaultErrorTitle. Credentials in the technical details are masked.
func FormatError(title string, err error) string {
	if strings.TrimSpace(title) == "" {
		title = DefaultErrorTitle
	}

	var b strings.Builder

	b.WriteString(pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint(title))
	b.WriteString("\n\n")

	switch Classify(err) {
	case ClassConfigMissing:
		b.WriteString("The credential file does not exist.\n")
		b.WriteString("  • Pass it with --credentials <path>\n")
		b.WriteString("  • Or set RECBROWSE_CREDENTIALS\n")
	case ClassConfigUnreadable:
		b.WriteString("The credential file could not be read.\n")
		b.WriteString("  • Check that it is a regular file\n")
		b.WriteString("  • Check its permissions\n")
	case ClassTimeout:
		b.WriteString("The database did not answer in time.\n")
		b.WriteString("  • Check host and port in the credential file\n")
		b.WriteString("  • Raise the limit with --timeout\n")
	case ClassDNS:
		b.WriteString("The database host name could not be resolved.\n")
		b.WriteString("  • Check the host line in the credential file\n")
	case ClassRefused:
		b.WriteString("The database refused the connection.\n")
		b.WriteString("  • Is the server running?\n")
		b.WriteString("  • Is the port correct?\n")
	case ClassAuth:
		b.WriteString("The database rejected the credentials.\n")
		b.WriteString("  • Check user and password\n")
		b.WriteString("  • Or store the password with 'recbrowse passwd' and use --keychain\n")
	case ClassTLS:
		b.WriteString("A secure connection to the database could not be established.\n")
	case ClassInvalidTable:
		b.WriteString("The table name is not a plain identifier.\n")
		b.WriteString("  • Use letters, digits and underscores, optionally schema.table\n")
	case ClassQuery:
		b.WriteString("A query failed while loading the table.\n")
	default:
		b.WriteString("An unexpected error occurred.\n")
	}

	b.WriteString("\n")
	b.WriteString(pterm.NewStyle(pterm.FgGray).Sprint("Technical details: " + Mask(err.Error())))
	return b.String()
}
